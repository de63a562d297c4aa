package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kompox/pipeops/domain"
	"github.com/kompox/pipeops/domain/model"
	"github.com/kompox/pipeops/internal/logging"
	"github.com/kompox/pipeops/internal/media"
)

// ThumbnailName is the file written next to the rendered frames.
const ThumbnailName = "thumbnail.jpg"

// ExtractLocalRender renders the render queue item of an instance on the
// local machine and registers the output as representations, plus a
// thumbnail of the first frame.
type ExtractLocalRender struct {
	Renderer domain.Renderer
	Runner   media.Runner
	// FFmpeg overrides the ffmpeg executable; resolved with media.ToolPath when empty.
	FFmpeg string
}

func (e *ExtractLocalRender) Label() string  { return "Extract Local Render" }
func (e *ExtractLocalRender) Order() float64 { return ExtractorOrder - 0.47 }
func (e *ExtractLocalRender) Hosts() []string {
	return []string{"aftereffects"}
}
func (e *ExtractLocalRender) Families() []string {
	return []string{"renderLocal", "render.local"}
}

func (e *ExtractLocalRender) Process(ctx context.Context, inst *Instance) error {
	logger := logging.FromContext(ctx)
	staging := inst.StagingDir
	logger.Debug(ctx, "staging dir", "path", staging)

	if inst.FileName == "" {
		return errors.New("No file extension set in Render Queue")
	}
	if err := e.Renderer.Render(ctx, domain.RenderRequest{StagingDir: staging, CompID: inst.CompID, FileName: inst.FileName}); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	ext := strings.TrimPrefix(filepath.Ext(filepath.Base(inst.FileName)), ".")
	entries, err := os.ReadDir(staging)
	if err != nil {
		return fmt.Errorf("failed to list staging dir: %w", err)
	}
	var files []string
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ext) {
			continue
		}
		files = append(files, ent.Name())
	}
	if len(files) == 0 {
		logger.Info(ctx, "no files")
		return nil
	}

	rep := &model.Representation{
		Name:       ext,
		Ext:        ext,
		Files:      files,
		StagingDir: staging,
		FrameStart: inst.FrameStart,
		FrameEnd:   inst.FrameEnd,
	}
	if inst.Review {
		rep.Tags = []string{"review"}
	}
	inst.Representations = []*model.Representation{rep}

	ffmpeg := e.FFmpeg
	if ffmpeg == "" {
		if ffmpeg, err = media.ToolPath("ffmpeg"); err != nil {
			logger.Warn(ctx, "Error in creating thumbnail", "error", err)
			return err
		}
	}
	args := media.ThumbnailArgs(ffmpeg, filepath.Join(staging, files[0]), filepath.Join(staging, ThumbnailName))
	logger.Debug(ctx, "thumbnail args", "args", strings.Join(args, " "))
	if _, err := e.Runner.Run(ctx, args); err != nil {
		logger.Warn(ctx, "Error in creating thumbnail", "error", err)
		return err
	}

	inst.Representations = append(inst.Representations, &model.Representation{
		Name:       "thumbnail",
		Ext:        "jpg",
		Files:      []string{ThumbnailName},
		StagingDir: staging,
		Tags:       []string{"thumbnail"},
	})
	return nil
}
