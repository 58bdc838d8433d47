package blog

import (
	"context"
	"fmt"

	"github.com/gosimple/slug"

	"github.com/beken0w/yatube/internal/models"
	"github.com/beken0w/yatube/internal/validate"
)

// Group administration. Groups are created and edited by operators;
// deleting a group detaches its posts instead of removing them.

// CreateGroup creates a group with a slug derived from the title. A
// numeric suffix keeps slugs unique when titles collide.
func (s *Service) CreateGroup(ctx context.Context, title, description string) (*models.Group, error) {
	cleaned, err := validate.Text(title)
	if err != nil {
		return nil, err
	}

	base := slug.Make(cleaned)
	candidate := base
	for i := 2; ; i++ {
		existing, err := s.groups.GetBySlug(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	group := &models.Group{
		Title:       cleaned,
		Slug:        candidate,
		Description: description,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// UpdateGroup edits a group's title and description. The slug is fixed
// at creation; posts keep linking to it.
func (s *Service) UpdateGroup(ctx context.Context, id int64, title, description string) (*models.Group, error) {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}

	cleaned, err := validate.Text(title)
	if err != nil {
		return nil, err
	}

	group.Title = cleaned
	group.Description = description
	if err := s.groups.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// DeleteGroup removes a group. Posts that referenced it end up without
// a group, not deleted.
func (s *Service) DeleteGroup(ctx context.Context, id int64) error {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrNotFound
	}
	return s.groups.Delete(ctx, id)
}

// ListGroups returns all groups ordered by title
func (s *Service) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.groups.List(ctx)
}
