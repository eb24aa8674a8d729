package roles

// Rule is the requirement for one HTTP method on a resource.
type Rule struct {
	Authenticated bool
	AnyOf         []Capability
}

var (
	Open          = Rule{}
	Authenticated = Rule{Authenticated: true}
)

func AnyOf(caps ...Capability) Rule {
	return Rule{Authenticated: true, AnyOf: caps}
}

// Decision is the outcome of evaluating a policy.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
	DenyMethod
)

// Policy maps HTTP methods to rules. Methods not listed are denied.
type Policy map[string]Rule

// Check ประเมินสิทธิ์ของ actor ต่อ method; actor เป็น nil ได้ถ้ายังไม่ login
func (p Policy) Check(method string, actor *Actor) Decision {
	rule, ok := p[method]
	if !ok {
		return DenyMethod
	}
	if !rule.Authenticated {
		return Allow
	}
	if actor == nil {
		return DenyUnauthenticated
	}
	if len(rule.AnyOf) > 0 && !actor.Caps.Any(rule.AnyOf...) {
		return DenyForbidden
	}
	return Allow
}
