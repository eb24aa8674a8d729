package roles

import (
	"net/http"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		isAdmin bool
		groups  []string
		want    Set
	}{
		{"customer", false, nil, 0},
		{"admin", true, nil, Of(Admin)},
		{"manager", false, []string{ManagerGroup}, Of(Manager)},
		{"crew", false, []string{DeliveryCrewGroup}, Of(DeliveryCrew)},
		{"manager and crew", false, []string{DeliveryCrewGroup, ManagerGroup}, Of(Manager, DeliveryCrew)},
		{"unknown group ignored", false, []string{"Chefs"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.isAdmin, tt.groups); got != tt.want {
				t.Fatalf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetPredicates(t *testing.T) {
	if !Set(0).IsCustomer() {
		t.Fatal("empty set should be a customer")
	}
	if Of(DeliveryCrew).IsStaff() {
		t.Fatal("delivery crew is not staff")
	}
	if !Of(Manager).IsStaff() || !Of(Admin).IsStaff() {
		t.Fatal("manager and admin are staff")
	}
	if got := Of(Admin, DeliveryCrew).String(); got != "admin,delivery-crew" {
		t.Fatalf("String() = %q", got)
	}
}

func TestPolicyCheck(t *testing.T) {
	p := Policy{
		http.MethodGet:    Open,
		http.MethodPost:   Authenticated,
		http.MethodDelete: AnyOf(Manager, Admin),
	}
	customer := &Actor{UserID: 1}
	manager := &Actor{UserID: 2, Caps: Of(Manager)}

	tests := []struct {
		name   string
		method string
		actor  *Actor
		want   Decision
	}{
		{"open allows anonymous", http.MethodGet, nil, Allow},
		{"authenticated rejects anonymous", http.MethodPost, nil, DenyUnauthenticated},
		{"authenticated allows customer", http.MethodPost, customer, Allow},
		{"capability rejects customer", http.MethodDelete, customer, DenyForbidden},
		{"capability allows manager", http.MethodDelete, manager, Allow},
		{"capability rejects anonymous first", http.MethodDelete, nil, DenyUnauthenticated},
		{"unlisted method denied", http.MethodPut, manager, DenyMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Check(tt.method, tt.actor); got != tt.want {
				t.Fatalf("Check(%s) = %v, want %v", tt.method, got, tt.want)
			}
		})
	}
}
