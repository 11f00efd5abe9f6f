package loader

import (
	"fmt"

	"github.com/dnv-opensource/vista-sdk-go/vis/codebook"
	"github.com/dnv-opensource/vista-sdk-go/vis/gmod"
	"github.com/dnv-opensource/vista-sdk-go/vis/location"
	"github.com/dnv-opensource/vista-sdk-go/vis/versioning"
	"github.com/dnv-opensource/vista-sdk-go/vis/visversion"
	"github.com/sirupsen/logrus"
)

// Source supplies the raw bytes for one (version, kind) reference-data
// payload (spec §4.A, §6): "given a version tag and a kind tag it
// returns the corresponding record." Versioning payloads are addressed
// by their target version, not a source/target pair, since the registry
// loads one step at a time.
type Source interface {
	Fetch(version visversion.Version, kind Kind) ([]byte, error)
}

// Snapshot is one VIS version's fully-decoded, immutable reference-data
// bundle (spec §3: "all reference-data objects are created once per VIS
// version during loader step A and then immutable").
type Snapshot struct {
	Version   visversion.Version
	Gmod      *gmod.Gmod
	Codebooks *codebook.Codebooks
	Locations *location.Locations
}

// Load decodes the gmod, codebooks, and locations payloads for version
// from src into a Snapshot. On failure no partial Snapshot is returned;
// the VIS façade passes the error on to the call that needed the version.
func Load(src Source, version visversion.Version) (*Snapshot, error) {
	log := logrus.WithFields(logrus.Fields{"version": version.String()})

	gmodRaw, err := src.Fetch(version, KindGmod)
	if err != nil {
		log.WithField("kind", KindGmod).WithError(err).Error("fetching reference data failed")
		return nil, fmt.Errorf("loader: fetching gmod for %s: %w", version, err)
	}
	g, gmodErrs := decodeGmod(version, gmodRaw)
	if len(gmodErrs) > 0 {
		log.WithField("kind", KindGmod).WithField("errorCount", len(gmodErrs)).Error("decoding reference data reported problems")
		return nil, fmt.Errorf("loader: decoding gmod for %s: %w", version, gmodErrs[0])
	}

	codebooksRaw, err := src.Fetch(version, KindCodebooks)
	if err != nil {
		log.WithField("kind", KindCodebooks).WithError(err).Error("fetching reference data failed")
		return nil, fmt.Errorf("loader: fetching codebooks for %s: %w", version, err)
	}
	books, err := decodeCodebooks(version, codebooksRaw)
	if err != nil {
		log.WithField("kind", KindCodebooks).WithError(err).Error("decoding reference data failed")
		return nil, fmt.Errorf("loader: decoding codebooks for %s: %w", version, err)
	}

	locationsRaw, err := src.Fetch(version, KindLocations)
	if err != nil {
		log.WithField("kind", KindLocations).WithError(err).Error("fetching reference data failed")
		return nil, fmt.Errorf("loader: fetching locations for %s: %w", version, err)
	}
	locs, err := decodeLocations(version, locationsRaw)
	if err != nil {
		log.WithField("kind", KindLocations).WithError(err).Error("decoding reference data failed")
		return nil, fmt.Errorf("loader: decoding locations for %s: %w", version, err)
	}

	log.Info("reference data loaded")

	return &Snapshot{Version: version, Gmod: g, Codebooks: books, Locations: locs}, nil
}

// LoadVersioningStep decodes the node-conversion table that produces
// targetVersion and registers it on conv.
func LoadVersioningStep(src Source, conv *versioning.Converter, targetVersion visversion.Version) error {
	log := logrus.WithFields(logrus.Fields{"version": targetVersion.String(), "kind": KindVersioning})

	raw, err := src.Fetch(targetVersion, KindVersioning)
	if err != nil {
		log.WithError(err).Error("fetching reference data failed")
		return fmt.Errorf("loader: fetching versioning step for %s: %w", targetVersion, err)
	}

	decodedTarget, changes, err := decodeVersioning(raw)
	if err != nil {
		log.WithError(err).Error("decoding reference data failed")
		return fmt.Errorf("loader: decoding versioning step for %s: %w", targetVersion, err)
	}
	if decodedTarget != targetVersion {
		return fmt.Errorf("loader: versioning payload target %s does not match requested %s", decodedTarget, targetVersion)
	}

	conv.LoadStep(targetVersion, changes)
	log.Info("versioning step loaded")
	return nil
}
