package representation

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kompox/pipeops/adapters/store/inmem"
	"github.com/kompox/pipeops/domain/model"
)

func TestRepresentationCRUD(t *testing.T) {
	ctx := context.Background()
	store := inmem.NewStore()
	u := &UseCase{Repos: &Repos{Version: store.VersionRepository, Representation: store.RepresentationRepository}}
	v := &model.Version{AssetID: "ast-1", Name: 1}
	if err := store.VersionRepository.Create(ctx, v); err != nil {
		t.Fatal(err)
	}

	c, err := u.Create(ctx, &CreateInput{VersionID: v.ID, Name: "exr", Files: []string{"a.1001.exr", "a.1002.exr"}, FrameStart: 1001, FrameEnd: 1002})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.Representation.Ext != "exr" {
		t.Errorf("Ext = %q, want default from name", c.Representation.Ext)
	}
	if _, err := u.Create(ctx, &CreateInput{VersionID: v.ID, Name: "mov", FrameStart: 10, FrameEnd: 1}); !errors.Is(err, model.ErrRepresentationInvalid) {
		t.Errorf("bad range: err = %v", err)
	}
	if _, err := u.Create(ctx, &CreateInput{VersionID: "missing", Name: "mov"}); !errors.Is(err, model.ErrVersionNotFound) {
		t.Errorf("missing version: err = %v", err)
	}

	g, err := u.Get(ctx, &GetInput{RepresentationID: c.Representation.ID})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a.1001.exr", "a.1002.exr"}, g.Representation.Files); diff != "" {
		t.Errorf("files mismatch:\n%s", diff)
	}
	l, err := u.List(ctx, &ListInput{VersionID: v.ID})
	if err != nil || len(l.Representations) != 1 {
		t.Fatalf("List = %v, %v", l, err)
	}
	if _, err := u.Delete(ctx, &DeleteInput{RepresentationID: c.Representation.ID}); err != nil {
		t.Fatal(err)
	}
	if _, err := u.Get(ctx, &GetInput{RepresentationID: c.Representation.ID}); !errors.Is(err, model.ErrRepresentationNotFound) {
		t.Errorf("after delete: err = %v", err)
	}
}
