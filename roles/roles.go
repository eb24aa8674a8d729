// Package roles resolves an actor's capability set and evaluates
// per-method permission policies.
package roles

import "strings"

type Capability uint8

const (
	Admin Capability = 1 << iota
	Manager
	DeliveryCrew
)

// Group names as stored in the groups table.
const (
	ManagerGroup      = "Manager"
	DeliveryCrewGroup = "Delivery Crew"
)

func (c Capability) String() string {
	switch c {
	case Admin:
		return "admin"
	case Manager:
		return "manager"
	case DeliveryCrew:
		return "delivery-crew"
	}
	return "unknown"
}

// Set is a capability bitset. The zero value is a plain customer.
type Set uint8

func Of(caps ...Capability) Set {
	var s Set
	for _, c := range caps {
		s |= Set(c)
	}
	return s
}

func (s Set) Has(c Capability) bool { return s&Set(c) != 0 }

func (s Set) Any(caps ...Capability) bool {
	for _, c := range caps {
		if s.Has(c) {
			return true
		}
	}
	return false
}

func (s Set) IsCustomer() bool { return s == 0 }

// IsStaff is true for managers and admins, who see every order.
func (s Set) IsStaff() bool { return s.Any(Admin, Manager) }

func (s Set) Names() []string {
	out := []string{}
	for _, c := range []Capability{Admin, Manager, DeliveryCrew} {
		if s.Has(c) {
			out = append(out, c.String())
		}
	}
	return out
}

func (s Set) String() string {
	if s.IsCustomer() {
		return "customer"
	}
	return strings.Join(s.Names(), ",")
}

// Resolve แปลง superuser flag + รายชื่อกลุ่ม เป็น capability set
func Resolve(isAdmin bool, groups []string) Set {
	var s Set
	if isAdmin {
		s |= Set(Admin)
	}
	for _, g := range groups {
		switch g {
		case ManagerGroup:
			s |= Set(Manager)
		case DeliveryCrewGroup:
			s |= Set(DeliveryCrew)
		}
	}
	return s
}

// Actor is the authenticated caller, resolved once per request.
type Actor struct {
	UserID   uint
	Username string
	Caps     Set
}
