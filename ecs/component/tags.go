package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type PropTag struct{}

var PropTagComponent = NewComponent[PropTag]()

// DebugTraceTag marks lines spawned from recorded weapon traces.
type DebugTraceTag struct{}

var DebugTraceTagComponent = NewComponent[DebugTraceTag]()
