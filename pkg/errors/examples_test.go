package errors_test

import (
	"fmt"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	err := &errors.NotFoundError{
		Resource: "item",
		ID:       "dune",
	}

	if errors.IsNotFound(err) {
		fmt.Println("Item not found")
	}

	// Output: Item not found
}

// Example_stateError shows how callers separate precondition failures
// from missing items.
func Example_stateError() {
	err := fmt.Errorf("add to collection: %w",
		errors.NewStateError("add to collection", "nature", "item is not a collection"))

	switch {
	case errors.IsNotFound(err):
		fmt.Println("missing")
	case errors.IsInvalidState(err):
		fmt.Println("rejected:", err)
	}

	// Output: rejected: add to collection: cannot add to collection nature: item is not a collection
}

// Example_storageError shows unwrapping the backend failure.
func Example_storageError() {
	err := errors.WrapStorage("yaml", "load", errors.New("unexpected EOF"))

	var se *errors.StorageError
	if errors.As(err, &se) {
		fmt.Printf("%s/%s: %v\n", se.Backend, se.Operation, se.Err)
	}

	// Output: yaml/load: unexpected EOF
}
