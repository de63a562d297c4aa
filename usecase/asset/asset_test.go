package asset

import (
	"context"
	"errors"
	"testing"

	"github.com/kompox/pipeops/adapters/store/inmem"
	"github.com/kompox/pipeops/domain/model"
)

func TestAssetCRUD(t *testing.T) {
	ctx := context.Background()
	store := inmem.NewStore()
	u := &UseCase{Repos: &Repos{Project: store.ProjectRepository, Asset: store.AssetRepository}}
	p1 := &model.Project{Name: "p1"}
	p2 := &model.Project{Name: "p2"}
	for _, p := range []*model.Project{p1, p2} {
		if err := store.ProjectRepository.Create(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := u.Create(ctx, &CreateInput{ProjectID: "missing", Name: "sh010"}); !errors.Is(err, model.ErrProjectNotFound) {
		t.Errorf("missing project: err = %v", err)
	}
	a, err := u.Create(ctx, &CreateInput{ProjectID: p1.ID, Name: "sh010", Silo: "film", Tasks: []string{"comp"}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := u.Create(ctx, &CreateInput{ProjectID: p1.ID, Name: "sh010"}); !errors.Is(err, model.ErrAssetInvalid) {
		t.Errorf("duplicate: err = %v", err)
	}
	if _, err := u.Create(ctx, &CreateInput{ProjectID: p2.ID, Name: "sh010"}); err != nil {
		t.Errorf("same name in another project: %v", err)
	}

	l, err := u.List(ctx, &ListInput{ProjectID: p1.ID})
	if err != nil || len(l.Assets) != 1 {
		t.Fatalf("List(p1) = %v, %v", l, err)
	}
	if l, _ := u.List(ctx, nil); len(l.Assets) != 2 {
		t.Errorf("List(all) = %d assets", len(l.Assets))
	}

	tasks := []string{"comp", "roto"}
	up, err := u.Update(ctx, &UpdateInput{AssetID: a.Asset.ID, Tasks: &tasks})
	if err != nil || len(up.Asset.Tasks) != 2 {
		t.Fatalf("Update = %v, %v", up, err)
	}
	if g, err := u.Get(ctx, &GetInput{AssetID: a.Asset.ID}); err != nil || g.Asset.Silo != "film" {
		t.Errorf("Get = %v, %v", g, err)
	}
	if _, err := u.Delete(ctx, &DeleteInput{AssetID: a.Asset.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := u.Get(ctx, &GetInput{AssetID: a.Asset.ID}); !errors.Is(err, model.ErrAssetNotFound) {
		t.Errorf("after delete: err = %v", err)
	}
}

func TestAssetCreate_InvalidNames(t *testing.T) {
	ctx := context.Background()
	store := inmem.NewStore()
	u := &UseCase{Repos: &Repos{Project: store.ProjectRepository, Asset: store.AssetRepository}}
	p := &model.Project{Name: "p"}
	if err := store.ProjectRepository.Create(ctx, p); err != nil {
		t.Fatal(err)
	}
	for _, in := range []*CreateInput{
		{ProjectID: p.ID, Name: "sq01/sh010"},
		{ProjectID: p.ID, Name: "sh010", Tasks: []string{"my task"}},
	} {
		if _, err := u.Create(ctx, in); !errors.Is(err, model.ErrAssetInvalid) {
			t.Errorf("Create(%+v): err = %v", in, err)
		}
	}
}
