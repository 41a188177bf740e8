package emit

import "errors"

// ErrOperator is returned when an operator tuple holds a code outside
// {0,1,2} (AND, OR, XOR) — always a programming error upstream, since
// engine derives every operator digit from a base-3 decode.
var ErrOperator = errors.New("emit: invalid operator code")
