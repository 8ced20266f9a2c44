package component

type Camera struct {
	TargetName string
	Zoom       float64
	Smoothness float64
	// ViewWidth and ViewHeight are the screen size in pixels the camera
	// centres on its target.
	ViewWidth  float64
	ViewHeight float64
}

var CameraComponent = NewComponent[Camera]()
