package gateway

import (
	"context"
	"fmt"

	"github.com/savasana-dev/yogabook/internal/model"
)

// TeacherGateway wraps the read-only teacher endpoints.
type TeacherGateway struct {
	client *Client
}

// NewTeacherGateway creates a new TeacherGateway.
func NewTeacherGateway(client *Client) *TeacherGateway {
	return &TeacherGateway{client: client}
}

// All fetches every teacher.
func (g *TeacherGateway) All(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	if err := g.client.get(ctx, "/teacher", &teachers); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// Detail fetches one teacher by id.
func (g *TeacherGateway) Detail(ctx context.Context, id string) (*model.Teacher, error) {
	var teacher model.Teacher
	if err := g.client.get(ctx, "/teacher/"+id, &teacher); err != nil {
		return nil, fmt.Errorf("teacher detail: %w", err)
	}
	return &teacher, nil
}
