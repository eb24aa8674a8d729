package services

import (
	"context"
	"strings"

	"littlelemon/entity"
	"littlelemon/repository"
	"littlelemon/roles"
)

// StaffService จัดการสมาชิกกลุ่ม Manager / Delivery Crew
type StaffService struct {
	Users *repository.UserRepository
}

func NewStaffService(users *repository.UserRepository) *StaffService {
	return &StaffService{Users: users}
}

type Employee struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AddMemberIn struct {
	Username string `json:"username" binding:"required"`
}

func (s *StaffService) group(ctx context.Context, name string) (*entity.Group, error) {
	if name != roles.ManagerGroup && name != roles.DeliveryCrewGroup {
		return nil, ErrUnknownGroup
	}
	// group ถูก seed ตอน start; ถ้าไม่เจอถือว่า config ผิด
	return s.Users.FindGroup(ctx, name)
}

func (s *StaffService) Members(ctx context.Context, groupName string) ([]Employee, error) {
	g, err := s.group(ctx, groupName)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.ListGroupMembers(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	out := make([]Employee, 0, len(users))
	for _, u := range users {
		out = append(out, Employee{ID: u.ID, Username: u.Username, Email: u.Email})
	}
	return out, nil
}

// Add เพิ่มซ้ำได้ ไม่ error
func (s *StaffService) Add(ctx context.Context, groupName, username string) (*Employee, error) {
	g, err := s.group(ctx, groupName)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	if err := s.Users.AddToGroup(ctx, u, g); err != nil {
		return nil, err
	}
	return &Employee{ID: u.ID, Username: u.Username, Email: u.Email}, nil
}

func (s *StaffService) Remove(ctx context.Context, groupName string, userID uint) error {
	g, err := s.group(ctx, groupName)
	if err != nil {
		return err
	}
	u, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	ok, err := s.Users.IsMember(ctx, u.ID, g.ID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotGroupMember
	}
	return s.Users.RemoveFromGroup(ctx, u, g)
}
