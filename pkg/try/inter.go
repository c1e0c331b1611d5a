package try

// Carrier is the contract shared by every result variant: an instance
// holds either a result or a cause, never both.
type Carrier interface {
	// IsSuccess returns true iff the instance holds no cause
	IsSuccess() bool
	// IsFailure returns true iff the instance holds a cause
	IsFailure() bool
	// Err returns the cause if the instance is a failure
	Err() error
}

// ValueCarrier extends Carrier for variants whose success holds a
// result
type ValueCarrier[T any] interface {
	Carrier
	// Result returns the successful result value
	Result() T
}

var (
	_ ValueCarrier[int] = Try[int]{}
	_ Carrier           = Void{}
)
