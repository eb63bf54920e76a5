package ports

import "github.com/bft-labs/corelink/pkg/log"

// Logger is the structured logging port. It is an alias of the public
// pkg/log interface so adapters written against either package satisfy both.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors re-exported for internal call sites.
var (
	String   = log.String
	Int      = log.Int
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
