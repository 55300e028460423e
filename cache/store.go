// Package cache persists per-root scan results as versioned records on
// disk. Records are JSON envelopes carrying an xxhash checksum over the
// class mapping, optionally gzip-compressed. A record is written once when
// a root is first scanned and only ever re-read afterwards; bumping the
// format version changes every record's file name, which invalidates all
// existing records without deleting anything.
package cache

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/javanav/javanav"
)

// Version is the current cache-format version tag. It must change whenever
// the serialized record's structure changes incompatibly.
const Version = "v2"

// Ensure Store implements javanav.CacheStore at compile time.
var _ javanav.CacheStore = (*Store)(nil)

// Store reads and writes cache records under a single directory.
type Store struct {
	// Dir is the cache directory. Created on first save.
	Dir string

	// Compress gzips records and appends ".gz" to their keys.
	Compress bool

	// Version overrides the format version tag. Defaults to Version.
	Version string
}

// NewStore creates a Store writing to dir.
func NewStore(dir string, compress bool) *Store {
	return &Store{Dir: dir, Compress: compress}
}

func (s *Store) version() string {
	if s.Version != "" {
		return s.Version
	}
	return Version
}

// Key derives the deterministic record name for a root directory or remote
// URL key: separators and colons become "-", then the version tag and the
// optional compression suffix are appended. The transform is lossy; it is
// not a hash, and distinct roots are expected (not guaranteed) to produce
// distinct keys.
func (s *Store) Key(rootOrURL string) string {
	key := sanitize(rootOrURL) + "-" + s.version()
	if s.Compress {
		key += ".gz"
	}
	return key
}

var sanitizer = strings.NewReplacer("/", "-", "\\", "-", ":", "-")

func sanitize(ref string) string {
	return sanitizer.Replace(ref)
}

// record is the on-disk envelope of one root's scan result.
type record struct {
	Checksum string            `json:"checksum"`
	Classes  map[string]string `json:"classes"`
}

func checksum(classes map[string]string) string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	sort.Strings(names)
	h := xxhash.New()
	for _, name := range names {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(classes[name])
		_, _ = h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// Load reads the record with the given key. Returns ECACHEMISS if no record
// exists, ECORRUPT if the content cannot be decoded or fails its checksum.
func (s *Store) Load(ctx context.Context, key string) (map[string]string, error) {
	path := filepath.Join(s.Dir, key)
	f, err := os.Open(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, javanav.Errorf(javanav.ECACHEMISS, "no cache record %s", path)
	}
	if err != nil {
		return nil, javanav.Errorf(javanav.EINTERNAL, "open cache record %s: %v", path, err)
	}
	defer f.Close()
	return decode(f, path, s.Compress)
}

func decode(r io.Reader, path string, compressed bool) (map[string]string, error) {
	if compressed {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, javanav.Errorf(javanav.ECORRUPT, "cache record %s is not valid gzip: %v", path, err)
		}
		defer gz.Close()
		r = gz
	}
	var rec record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, javanav.Errorf(javanav.ECORRUPT, "cache record %s cannot be decoded: %v", path, err)
	}
	if rec.Classes == nil {
		rec.Classes = make(map[string]string)
	}
	if rec.Checksum != checksum(rec.Classes) {
		return nil, javanav.Errorf(javanav.ECORRUPT, "cache record %s failed its checksum", path)
	}
	return rec.Classes, nil
}

// Save writes the record atomically: the envelope goes to a uniquely-named
// temporary file in the cache directory and is renamed into place, so a
// concurrent reader from another process never observes a partial record.
func (s *Store) Save(ctx context.Context, key string, classes map[string]string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return javanav.Errorf(javanav.EINTERNAL, "create cache directory %s: %v", s.Dir, err)
	}
	final := filepath.Join(s.Dir, key)
	tmp := final + ".tmp-" + uuid.New().String()
	f, err := os.Create(tmp)
	if err != nil {
		return javanav.Errorf(javanav.EINTERNAL, "create cache record %s: %v", tmp, err)
	}
	if err := s.encode(f, classes); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return javanav.Errorf(javanav.EINTERNAL, "write cache record %s: %v", tmp, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return javanav.Errorf(javanav.EINTERNAL, "sync cache record %s: %v", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return javanav.Errorf(javanav.EINTERNAL, "close cache record %s: %v", tmp, err)
	}
	if err := os.Rename(tmp, final); err != nil {
		_ = os.Remove(tmp)
		return javanav.Errorf(javanav.EINTERNAL, "commit cache record %s: %v", final, err)
	}
	return nil
}

func (s *Store) encode(w io.Writer, classes map[string]string) error {
	rec := record{Checksum: checksum(classes), Classes: classes}
	if rec.Classes == nil {
		rec.Classes = make(map[string]string)
	}
	if s.Compress {
		gz := gzip.NewWriter(w)
		if err := json.NewEncoder(gz).Encode(&rec); err != nil {
			return err
		}
		return gz.Close()
	}
	return json.NewEncoder(w).Encode(&rec)
}
