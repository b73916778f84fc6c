package util
import (
	"errors"
)

/*
 * error kinds shared by the codec. all of them are input errors:
 * the computation is deterministic, so none of them is worth a retry.
 */
var (
	ErrInvalidImage = errors.New("invalid image")
	ErrCapacityExceeded = errors.New("payload exceeds cover capacity")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrOverflow = errors.New("bit sequence overflows integer")
)
