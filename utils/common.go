package utils

const (
	NODETOL = 1.e-12
)

// Defaults shared by the iterative kernels
const (
	FixedPointTOL     = 1.e-9
	FixedPointMaxIter = 500
	RootTOL           = 1.e-14
	ConditionLimit    = 1.e12
)
