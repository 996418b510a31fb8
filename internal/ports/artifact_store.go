package ports

import "github.com/aalvaropc/primer/internal/domain"

// ArtifactStore persists fetch artifacts for later inspection.
type ArtifactStore interface {
	SaveFetch(artifact domain.FetchArtifact) (id string, err error)
}
