package pipeopscfg

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/kompox/pipeops/domain/model"
)

// Models is the result of converting a Root into domain models.
type Models struct {
	Project         *model.Project
	Assets          []*model.Asset
	Versions        []*model.Version
	Representations []*model.Representation
}

// ToModels converts the configuration to domain models with proper references.
// Records without an explicit id receive a generated one.
func (r *Root) ToModels() (*Models, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	now := time.Now().UTC()

	apps := make([]model.ProjectApp, 0, len(r.Project.Apps))
	for _, a := range r.Project.Apps {
		apps = append(apps, model.ProjectApp{Name: a.Name, Label: a.Label})
	}
	out := &Models{
		Project: &model.Project{
			ID:   idOr(r.Project.ID, "prj"),
			Name: r.Project.Name,
			Code: r.Project.Code,
			Root: r.Project.Root,
			Config: model.ProjectConfig{
				Template: model.ProjectTemplate{Work: r.Project.Template.Work, Publish: r.Project.Template.Publish},
				Apps:     apps,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	for _, a := range r.Assets {
		asset := &model.Asset{
			ID:        idOr(a.ID, "ast"),
			ProjectID: out.Project.ID,
			Name:      a.Name,
			Silo:      a.Silo,
			Tasks:     slices.Clone(a.Tasks),
			CreatedAt: now,
			UpdatedAt: now,
		}
		out.Assets = append(out.Assets, asset)

		for _, v := range a.Versions {
			version := &model.Version{
				ID:        idOr(v.ID, "ver"),
				AssetID:   asset.ID,
				Name:      v.Name,
				Author:    v.Author,
				Comment:   v.Comment,
				CreatedAt: now,
				UpdatedAt: now,
			}
			out.Versions = append(out.Versions, version)

			for _, rep := range v.Representations {
				out.Representations = append(out.Representations, &model.Representation{
					ID:         idOr(rep.ID, "rep"),
					VersionID:  version.ID,
					Name:       rep.Name,
					Ext:        rep.Ext,
					Files:      slices.Clone(rep.Files),
					StagingDir: rep.StagingDir,
					Tags:       slices.Clone(rep.Tags),
					FrameStart: rep.FrameStart,
					FrameEnd:   rep.FrameEnd,
					CreatedAt:  now,
					UpdatedAt:  now,
				})
			}
		}
	}
	return out, nil
}

func idOr(id, prefix string) string {
	if id != "" {
		return id
	}
	return prefix + "-" + uuid.NewString()
}
