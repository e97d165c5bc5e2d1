package markup

import "fmt"

// FaultCode identifies the kind of malformed tree.
type FaultCode string

const (
	CodeEmptyTag         FaultCode = "M001"
	CodeEmptyAttrKey     FaultCode = "M002"
	CodeVoidChildren     FaultCode = "M003"
	CodeUnsupportedValue FaultCode = "M004"
)

var faultMessages = map[FaultCode]string{
	CodeEmptyTag:         "element tag is empty",
	CodeEmptyAttrKey:     "attribute key is empty",
	CodeVoidChildren:     "void element has children",
	CodeUnsupportedValue: "value is not renderable",
}

// Fault is the panic value raised for a malformed tree.
type Fault struct {
	Code  FaultCode
	Tag   string // Element being built or rendered, if any
	Value any    // Offending value for CodeVoidChildren and CodeUnsupportedValue
}

func newFault(code FaultCode, tag string, value any) *Fault {
	return &Fault{Code: code, Tag: tag, Value: value}
}

// Message returns the short description for the fault code.
func (f *Fault) Message() string {
	if msg, ok := faultMessages[f.Code]; ok {
		return msg
	}
	return "malformed tree"
}

// Error implements the error interface.
func (f *Fault) Error() string {
	switch {
	case f.Code == CodeUnsupportedValue:
		return fmt.Sprintf("%s: %s: %T", f.Code, f.Message(), f.Value)
	case f.Tag != "":
		return fmt.Sprintf("%s: %s: <%s>", f.Code, f.Message(), f.Tag)
	default:
		return fmt.Sprintf("%s: %s", f.Code, f.Message())
	}
}
