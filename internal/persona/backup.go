package persona

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// backupVersion is the current backup record schema version.
const backupVersion = 1

// BackupRecord is the portable serialization of a persona. Derived
// metrics are deliberately absent: Import recomputes them from
// rawContent, which is deterministic, so the record stays small and
// forward-compatible with analyzer changes.
type BackupRecord struct {
	Name         string    `json:"name"`
	RawContent   string    `json:"rawContent"`
	Instructions string    `json:"instructions,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	ContentType  string    `json:"contentType"`
	Version      int       `json:"version"`
}

func backupRecord(p Profile) BackupRecord {
	return BackupRecord{
		Name:         p.Name,
		RawContent:   p.RawTrainingText,
		Instructions: p.Instructions,
		CreatedAt:    p.CreatedAt,
		ContentType:  string(p.ContentType),
		Version:      backupVersion,
	}
}

// Export serializes a profile into a backup record.
func Export(p Profile) ([]byte, error) {
	data, err := json.MarshalIndent(backupRecord(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backup for %s: %w", p.Name, err)
	}
	return data, nil
}

// Import rebuilds a profile from a backup record, recomputing metrics
// from the raw content with the given builder.
func Import(data []byte, b *Builder) (Profile, error) {
	var rec BackupRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Profile{}, fmt.Errorf("parse backup record: %w", err)
	}
	if strings.TrimSpace(rec.Name) == "" {
		return Profile{}, fmt.Errorf("backup record has no name")
	}
	if rec.Version > backupVersion {
		return Profile{}, fmt.Errorf("backup record version %d is newer than supported version %d", rec.Version, backupVersion)
	}

	contentType := ContentType(rec.ContentType)
	switch contentType {
	case ContentPosts, ContentBlogs, ContentMixed:
	case "":
		contentType = ContentMixed
	default:
		return Profile{}, fmt.Errorf("backup record has unknown content type %q", rec.ContentType)
	}

	meta, builtin := BuiltinMetadata(rec.Name)
	if meta == nil {
		meta = &Metadata{}
	}
	if rec.Instructions != "" {
		meta.Instructions = rec.Instructions
	}

	p := b.Build(rec.Name, rec.RawContent, contentType, meta)
	p.BuiltIn = builtin
	p.CreatedAt = rec.CreatedAt
	return p, nil
}
