package scene

// ValidationResult is the outcome of validating generated scene source.
type ValidationResult struct {
	// IsValid is true iff Errors is empty.
	IsValid bool

	// Errors lists fatal rule violations, in check order.
	Errors []string

	// Warnings lists non-fatal concerns (e.g. a static animation with
	// no play calls). Warnings never affect IsValid.
	Warnings []string
}

// recognizedBases are the Manim scene base classes the renderer can run.
var recognizedBases = []string{
	"Scene",
	"MovingCameraScene",
	"ThreeDScene",
	"ZoomedScene",
	"VectorScene",
}
