package debug

type Tselector string

// ALWAYS
const (
	ALWAYS Tselector = "ALWAYS"
	ERROR            = "ERROR"
)

// ERR
const (
	ERR Tselector = "_ERR"
)

// Tests
const (
	TEST Tselector = "TEST"
)

// Config
const (
	CONFIG Tselector = "CONFIG"
)

// Fslib
const (
	FSLIB     Tselector = "FSLIB"
	FSLIB_ERR           = FSLIB + ERR
)

// Tokenizer
const (
	WC Tselector = "WC"
)

// MR
const (
	MR      Tselector = "MR"
	MR_TPT            = "MR_TPT"
	MR_ERR            = MR + ERR
	SHUFFLE           = "SHUFFLE"
)

// Report
const (
	REPORT Tselector = "REPORT"
)
