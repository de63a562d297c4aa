package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/colorspace"
)

// fakeRenderer writes the given files into the staging dir.
type fakeRenderer struct {
	files []string
	err   error
	reqs  []domain.RenderRequest
}

func (r *fakeRenderer) Render(_ context.Context, req domain.RenderRequest) error {
	r.reqs = append(r.reqs, req)
	if r.err != nil {
		return r.err
	}
	for _, f := range r.files {
		if err := os.WriteFile(filepath.Join(req.StagingDir, f), []byte("x"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

type fakeRunner struct {
	mu   sync.Mutex
	args [][]string
	err  error
}

func (r *fakeRunner) Run(_ context.Context, args []string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.args = append(r.args, args)
	return "", r.err
}

func TestExtractLocalRender(t *testing.T) {
	staging := t.TempDir()
	renderer := &fakeRenderer{files: []string{"sh010.0001.png", "sh010.0002.png", "notes.txt"}}
	runner := &fakeRunner{}
	ext := &ExtractLocalRender{Renderer: renderer, Runner: runner, FFmpeg: "ffmpeg"}
	inst := &Instance{
		Name: "renderMain", Family: "render", Families: []string{"render.local"},
		StagingDir: staging, FileName: "sh010.[####].png", CompID: "7",
		FrameStart: 1, FrameEnd: 2, Review: true,
	}
	if err := ext.Process(context.Background(), inst); err != nil {
		t.Fatalf("Process: %v", err)
	}
	want := []*model.Representation{
		{Name: "png", Ext: "png", Files: []string{"sh010.0001.png", "sh010.0002.png"}, StagingDir: staging, FrameStart: 1, FrameEnd: 2, Tags: []string{"review"}},
		{Name: "thumbnail", Ext: "jpg", Files: []string{"thumbnail.jpg"}, StagingDir: staging, Tags: []string{"thumbnail"}},
	}
	if diff := cmp.Diff(want, inst.Representations); diff != "" {
		t.Errorf("representations mismatch (-want +got):\n%s", diff)
	}
	wantArgs := [][]string{{"ffmpeg", "-y", "-i", filepath.Join(staging, "sh010.0001.png"), "-vf", "scale=300:-1", "-vframes", "1", filepath.Join(staging, "thumbnail.jpg")}}
	if diff := cmp.Diff(wantArgs, runner.args); diff != "" {
		t.Errorf("ffmpeg args mismatch (-want +got):\n%s", diff)
	}
	if renderer.reqs[0].CompID != "7" {
		t.Errorf("CompID = %q", renderer.reqs[0].CompID)
	}
}

func TestExtractLocalRender_SingleFileNoReview(t *testing.T) {
	staging := t.TempDir()
	ext := &ExtractLocalRender{Renderer: &fakeRenderer{files: []string{"sh010.mov"}}, Runner: &fakeRunner{}, FFmpeg: "ffmpeg"}
	inst := &Instance{Name: "r", StagingDir: staging, FileName: "sh010.mov"}
	if err := ext.Process(context.Background(), inst); err != nil {
		t.Fatal(err)
	}
	rep := inst.Representations[0]
	if diff := cmp.Diff([]string{"sh010.mov"}, rep.Files); diff != "" {
		t.Errorf("files mismatch:\n%s", diff)
	}
	if rep.HasTag("review") {
		t.Error("unexpected review tag")
	}
}

func TestExtractLocalRender_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("no file name", func(t *testing.T) {
		ext := &ExtractLocalRender{Renderer: &fakeRenderer{}, Runner: &fakeRunner{}}
		err := ext.Process(ctx, &Instance{StagingDir: t.TempDir()})
		if err == nil || err.Error() != "No file extension set in Render Queue" {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("no files", func(t *testing.T) {
		runner := &fakeRunner{}
		ext := &ExtractLocalRender{Renderer: &fakeRenderer{}, Runner: runner, FFmpeg: "ffmpeg"}
		inst := &Instance{StagingDir: t.TempDir(), FileName: "a.exr"}
		if err := ext.Process(ctx, inst); err != nil {
			t.Fatal(err)
		}
		if len(inst.Representations) != 0 || len(runner.args) != 0 {
			t.Errorf("expected nothing, got %v / %v", inst.Representations, runner.args)
		}
	})

	t.Run("render error", func(t *testing.T) {
		boom := errors.New("boom")
		ext := &ExtractLocalRender{Renderer: &fakeRenderer{err: boom}, Runner: &fakeRunner{}}
		err := ext.Process(ctx, &Instance{StagingDir: t.TempDir(), FileName: "a.exr"})
		if !errors.Is(err, boom) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("thumbnail error", func(t *testing.T) {
		boom := errors.New("ffmpeg crashed")
		ext := &ExtractLocalRender{Renderer: &fakeRenderer{files: []string{"a.exr"}}, Runner: &fakeRunner{err: boom}, FFmpeg: "ffmpeg"}
		inst := &Instance{StagingDir: t.TempDir(), FileName: "a.exr"}
		if err := ext.Process(ctx, inst); !errors.Is(err, boom) {
			t.Fatalf("err = %v", err)
		}
		if len(inst.Representations) != 1 {
			t.Errorf("expected only the render representation, got %d", len(inst.Representations))
		}
	})
}

func testColorConfig(t *testing.T) *colorspace.Config {
	t.Helper()
	cfg, err := colorspace.Parse([]byte("path: /ocio/config.ocio\ncolorspaces:\n  - name: ACES - ACEScg\n    aliases: [acescg]\n"))
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestCollectColorspace(t *testing.T) {
	c := &CollectColorspace{Config: testColorConfig(t)}
	inst := &Instance{
		Family:          "plate",
		Attributes:      map[string]string{"colorspace": "acescg"},
		Representations: []*model.Representation{{Name: "exr"}, {Name: "mov"}},
	}
	if err := c.Process(context.Background(), inst); err != nil {
		t.Fatal(err)
	}
	for _, rep := range inst.Representations {
		want := &model.ColorspaceData{Colorspace: "ACES - ACEScg", ConfigPath: "/ocio/config.ocio"}
		if diff := cmp.Diff(want, rep.Colorspace); diff != "" {
			t.Errorf("%s colorspace mismatch:\n%s", rep.Name, diff)
		}
	}

	inst = &Instance{Representations: []*model.Representation{{Name: "exr"}}}
	if err := c.Process(context.Background(), inst); err != nil || inst.Representations[0].Colorspace != nil {
		t.Errorf("no attribute should leave representations untouched: %v", err)
	}

	inst = &Instance{Attributes: map[string]string{"colorspace": "bogus"}}
	if err := c.Process(context.Background(), inst); !errors.Is(err, colorspace.ErrUnknown) {
		t.Errorf("err = %v, want ErrUnknown", err)
	}

	if items := c.Items(); items[0].Label != "Don't override" || len(items) != 3 {
		t.Errorf("Items() = %v", items)
	}
	if (&CollectColorspace{}).Enabled() {
		t.Error("expected disabled without config")
	}
}

type recordPlugin struct {
	label    string
	order    float64
	hosts    []string
	families []string
	mu       *sync.Mutex
	seen     *[]string
	err      error
}

func (p *recordPlugin) Label() string      { return p.label }
func (p *recordPlugin) Order() float64     { return p.order }
func (p *recordPlugin) Hosts() []string    { return p.hosts }
func (p *recordPlugin) Families() []string { return p.families }
func (p *recordPlugin) Process(_ context.Context, inst *Instance) error {
	p.mu.Lock()
	*p.seen = append(*p.seen, inst.Name+":"+p.label)
	p.mu.Unlock()
	return p.err
}

func TestPublish(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	mk := func(label string, order float64, hosts, families []string) *recordPlugin {
		return &recordPlugin{label: label, order: order, hosts: hosts, families: families, mu: &mu, seen: &seen}
	}
	uc := &UseCase{
		Host: "aftereffects",
		Plugins: []Plugin{
			mk("extract", ExtractorOrder, nil, []string{"render"}),
			mk("collect", CollectorOrder, nil, nil),
			mk("other-host", CollectorOrder, []string{"traypublisher"}, nil),
			mk("other-family", ExtractorOrder, nil, []string{"plate"}),
		},
		Parallelism: 2,
	}
	out, err := uc.Publish(context.Background(), &PublishInput{Instances: []*Instance{
		{Name: "a", Family: "render"},
		{Name: "b", Family: "workfile"},
	}})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	wantRuns := []PluginRun{
		{Instance: "a", Plugin: "collect"},
		{Instance: "a", Plugin: "extract"},
		{Instance: "b", Plugin: "collect"},
	}
	if diff := cmp.Diff(wantRuns, out.Runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a:collect", "a:extract", "b:collect"}, seen, cmpopts.SortSlices(func(x, y string) bool { return x < y })); diff != "" {
		t.Errorf("seen mismatch:\n%s", diff)
	}
}

func TestPublish_Error(t *testing.T) {
	var mu sync.Mutex
	var seen []string
	boom := errors.New("boom")
	uc := &UseCase{Plugins: []Plugin{&recordPlugin{label: "fail", mu: &mu, seen: &seen, err: boom}}}
	if _, err := uc.Publish(context.Background(), &PublishInput{Instances: []*Instance{{Name: "a"}}}); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if _, err := uc.Publish(context.Background(), &PublishInput{}); err == nil {
		t.Error("expected error without instances")
	}
}

func TestLoadInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instances.yml")
	doc := `host: aftereffects
instances:
  - name: renderMain
    family: render
    families: [render.local]
    stagingDir: /tmp/staging
    fileName: sh010.[####].png
    compId: "7"
    frameStart: 1001
    frameEnd: 1010
    review: true
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadInstances(path)
	if err != nil {
		t.Fatal(err)
	}
	want := &InstanceFile{Host: "aftereffects", Instances: []*Instance{{
		Name: "renderMain", Family: "render", Families: []string{"render.local"},
		StagingDir: "/tmp/staging", FileName: "sh010.[####].png", CompID: "7",
		FrameStart: 1001, FrameEnd: 1010, Review: true,
	}}}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("instance file mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"render", "render.local"}, f.Instances[0].AllFamilies()); diff != "" {
		t.Errorf("AllFamilies mismatch:\n%s", diff)
	}
}
