package project

import (
	"context"
	"errors"
	"testing"

	"github.com/kompox/pipeops/adapters/store/inmem"
	"github.com/kompox/pipeops/domain/model"
)

func TestProjectCRUD(t *testing.T) {
	ctx := context.Background()
	u := &UseCase{Repos: &Repos{Project: inmem.NewProjectRepository()}}

	if _, err := u.Create(ctx, &CreateInput{}); !errors.Is(err, model.ErrProjectInvalid) {
		t.Fatalf("empty name: err = %v", err)
	}
	c, err := u.Create(ctx, &CreateInput{Name: "demo", Root: "/mnt/projects", Config: model.ProjectConfig{
		Template: model.ProjectTemplate{Work: "{root}/{project}/{asset}/work/{task}/{app}"},
	}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Project.ID == "" {
		t.Fatal("expected ID")
	}
	if _, err := u.Create(ctx, &CreateInput{Name: "demo"}); !errors.Is(err, model.ErrProjectInvalid) {
		t.Errorf("duplicate name: err = %v", err)
	}

	g, err := u.Get(ctx, &GetInput{Name: "demo"})
	if err != nil || g.Project.ID != c.Project.ID {
		t.Fatalf("Get by name = %v, %v", g, err)
	}

	root := "/srv/projects"
	up, err := u.Update(ctx, &UpdateInput{ProjectID: c.Project.ID, Root: &root})
	if err != nil || up.Project.Root != root {
		t.Fatalf("Update = %v, %v", up, err)
	}
	g, _ = u.Get(ctx, &GetInput{ProjectID: c.Project.ID})
	if g.Project.Root != root || g.Project.Config.Template.Work == "" {
		t.Errorf("after update: %+v", g.Project)
	}

	l, err := u.List(ctx, &ListInput{})
	if err != nil || len(l.Projects) != 1 {
		t.Fatalf("List = %v, %v", l, err)
	}

	if _, err := u.Delete(ctx, &DeleteInput{ProjectID: c.Project.ID}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := u.Get(ctx, &GetInput{ProjectID: c.Project.ID}); !errors.Is(err, model.ErrProjectNotFound) {
		t.Errorf("after delete: err = %v", err)
	}
	if _, err := u.Delete(ctx, &DeleteInput{}); err != nil {
		t.Errorf("empty delete should be a no-op: %v", err)
	}
}
