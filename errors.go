package erase

import "fmt"

// BadCastError reports a value-form cast that requested a type other than
// the one currently held. Want is the requested type, Have the held one
// (VoidType for an empty Value).
type BadCastError struct {
	Want *TypeInfo
	Have *TypeInfo
}

func (e *BadCastError) Error() string {
	return fmt.Sprintf("cannot cast value of type %s to %s", e.Have, e.Want)
}
