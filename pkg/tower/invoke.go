package tower

import "fmt"

// InvokeResolvePriority is a second ordering axis of a Key.  It treats
// `a.foo()` common calls as more prioritized than `a.foo.invoke()` and only
// matters when the tower parts of two keys are equal.
type InvokeResolvePriority uint8

const (
	InvokeNone InvokeResolvePriority = iota
	InvokeReceiver
	CommonInvoke
	InvokeExtension
)

var invokeResolvePriorityNames = map[InvokeResolvePriority]string{
	InvokeNone:      "None",
	InvokeReceiver:  "InvokeReceiver",
	CommonInvoke:    "CommonInvoke",
	InvokeExtension: "InvokeExtension",
}

// String implements fmt.Stringer
func (p InvokeResolvePriority) String() string {
	if name, ok := invokeResolvePriorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("InvokeResolvePriority(%d)", uint8(p))
}

// ParseInvokeResolvePriority is the inverse of String.
func ParseInvokeResolvePriority(name string) (InvokeResolvePriority, error) {
	for p, n := range invokeResolvePriorityNames {
		if n == name {
			return p, nil
		}
	}
	return InvokeNone, fmt.Errorf("unknown invoke resolve priority: %q", name)
}
