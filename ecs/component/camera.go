package component

type Camera struct {
	TargetName string
	Zoom       float64
	Smoothness float64

	Focused bool
	FocusX  float64
	FocusY  float64
}

var CameraComponent = NewComponent[Camera]()
