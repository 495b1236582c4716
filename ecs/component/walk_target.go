package component

// WalkTarget marks a point a scripted walk heads for.
type WalkTarget struct{}

var WalkTargetComponent = NewComponent[WalkTarget]()
