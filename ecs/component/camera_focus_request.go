package component

// CameraFocusRequest asks the camera system to look at a point, or to return
// to its default target when Release is set. Consumed on the next camera update.
type CameraFocusRequest struct {
	X       float64
	Y       float64
	Release bool
}

var CameraFocusRequestComponent = NewComponent[CameraFocusRequest]()
