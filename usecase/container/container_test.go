package container

import (
	"context"
	"errors"
	"testing"

	"github.com/kompox/pipeops/adapters/store/inmem"
	"github.com/kompox/pipeops/domain/model"
)

type fakeHost struct {
	containers []model.Container
	err        error
}

func (h *fakeHost) Name() string { return "fake" }
func (h *fakeHost) Ls(context.Context) ([]model.Container, error) {
	return h.containers, h.err
}

// countingRepresentations counts Get calls to verify de-duplication.
type countingRepresentations struct {
	*inmem.RepresentationRepository
	gets int
}

func (c *countingRepresentations) Get(ctx context.Context, id string) (*model.Representation, error) {
	c.gets++
	return c.RepresentationRepository.Get(ctx, id)
}

func newFixture(t *testing.T) (*UseCase, *countingRepresentations) {
	t.Helper()
	ctx := context.Background()
	versions := inmem.NewVersionRepository()
	reps := &countingRepresentations{RepresentationRepository: inmem.NewRepresentationRepository()}
	for _, v := range []*model.Version{
		{ID: "v1", AssetID: "sh010", Name: 1},
		{ID: "v2", AssetID: "sh010", Name: 2},
		{ID: "v7", AssetID: "sh020", Name: 7},
	} {
		if err := versions.Create(ctx, v); err != nil {
			t.Fatal(err)
		}
	}
	for _, r := range []*model.Representation{
		{ID: "r-old", VersionID: "v1", Name: "exr"},
		{ID: "r-new", VersionID: "v2", Name: "exr"},
		{ID: "r-only", VersionID: "v7", Name: "exr"},
		{ID: "r-orphan", VersionID: "missing", Name: "exr"},
	} {
		if err := reps.Create(ctx, r); err != nil {
			t.Fatal(err)
		}
	}
	return &UseCase{Repos: &Repos{Version: versions, Representation: reps}}, reps
}

func TestIsLatest(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()
	tests := []struct {
		id      string
		want    bool
		wantErr error
	}{
		{id: "r-old", want: false},
		{id: "r-new", want: true},
		{id: "r-only", want: true},
		{id: "r-missing", wantErr: model.ErrRepresentationNotFound},
		{id: "r-orphan", wantErr: model.ErrVersionNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			out, err := uc.IsLatest(ctx, &IsLatestInput{RepresentationID: tt.id})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("IsLatest: %v", err)
			}
			if out.Latest != tt.want {
				t.Errorf("IsLatest(%s) = %v, want %v", tt.id, out.Latest, tt.want)
			}
		})
	}
}

func TestIsLatest_EmptyID(t *testing.T) {
	uc, _ := newFixture(t)
	if _, err := uc.IsLatest(context.Background(), &IsLatestInput{}); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestAnyOutdated(t *testing.T) {
	ctx := context.Background()

	t.Run("all latest, duplicates checked once", func(t *testing.T) {
		uc, reps := newFixture(t)
		host := &fakeHost{containers: []model.Container{
			{Name: "a", Representation: "r-new"},
			{Name: "b", Representation: "r-new"},
			{Name: "c", Representation: "r-only"},
		}}
		out, err := uc.AnyOutdated(ctx, &AnyOutdatedInput{Host: host})
		if err != nil {
			t.Fatalf("AnyOutdated: %v", err)
		}
		if out.Outdated {
			t.Error("expected no outdated content")
		}
		if reps.gets != 2 {
			t.Errorf("representation lookups = %d, want 2", reps.gets)
		}
	})

	t.Run("stops at first outdated", func(t *testing.T) {
		uc, reps := newFixture(t)
		host := &fakeHost{containers: []model.Container{
			{Name: "a", Representation: "r-old"},
			{Name: "b", Representation: "r-missing"},
		}}
		out, err := uc.AnyOutdated(ctx, &AnyOutdatedInput{Host: host})
		if err != nil {
			t.Fatalf("AnyOutdated: %v", err)
		}
		if !out.Outdated {
			t.Error("expected outdated content")
		}
		if reps.gets != 1 {
			t.Errorf("representation lookups = %d, want 1", reps.gets)
		}
	})

	t.Run("empty scene", func(t *testing.T) {
		uc, _ := newFixture(t)
		out, err := uc.AnyOutdated(ctx, &AnyOutdatedInput{Host: &fakeHost{}})
		if err != nil || out.Outdated {
			t.Fatalf("AnyOutdated = %+v, %v", out, err)
		}
	})

	t.Run("host error", func(t *testing.T) {
		uc, _ := newFixture(t)
		if _, err := uc.AnyOutdated(ctx, &AnyOutdatedInput{Host: &fakeHost{err: errors.New("boom")}}); err == nil {
			t.Fatal("expected host error")
		}
	})

	t.Run("no host", func(t *testing.T) {
		uc, _ := newFixture(t)
		if _, err := uc.AnyOutdated(ctx, &AnyOutdatedInput{}); err == nil {
			t.Fatal("expected error without host")
		}
	})
}

func TestListOutdated(t *testing.T) {
	uc, reps := newFixture(t)
	host := &fakeHost{containers: []model.Container{
		{Name: "bg", Representation: "r-old"},
		{Name: "bg2", Representation: "r-old"},
		{Name: "fg", Representation: "r-new"},
	}}
	out, err := uc.ListOutdated(context.Background(), &ListOutdatedInput{Host: host})
	if err != nil {
		t.Fatalf("ListOutdated: %v", err)
	}
	if len(out.Outdated) != 2 {
		t.Fatalf("outdated = %+v, want 2 entries", out.Outdated)
	}
	if out.Outdated[0].Version != 1 || out.Outdated[0].LatestVersion != 2 {
		t.Errorf("unexpected versions %+v", out.Outdated[0])
	}
	if out.Checked != 2 || reps.gets != 2 {
		t.Errorf("checked = %d gets = %d, want 2", out.Checked, reps.gets)
	}
}

func TestOutdated_NoHost(t *testing.T) {
	uc, _ := newFixture(t)
	ctx := context.Background()
	if _, err := uc.ListOutdated(ctx, nil); err == nil {
		t.Error("ListOutdated(nil) should fail")
	}
	if _, err := uc.ListOutdated(ctx, &ListOutdatedInput{}); err == nil {
		t.Error("ListOutdated without host should fail")
	}
	if _, err := uc.AnyOutdated(ctx, nil); err == nil {
		t.Error("AnyOutdated(nil) should fail")
	}
}
