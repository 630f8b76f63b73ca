// Package assets resolves logical asset paths and loads files and images
// from the asset tree.
package assets

//go:generate mockgen -destination=mock/mock_store.go -package=assetsmock github.com/KirkDiggler/ducttape-items/internal/assets Store

import (
	"bytes"
	"context"
	"image"
	_ "image/png" // register the PNG decoder
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// Scheme prefixes logical asset paths
const Scheme = "res://assets/"

// Store reads assets by logical path
type Store interface {
	// ReadFile returns errors.NotFound when the file does not exist
	ReadFile(ctx context.Context, logical string) ([]byte, error)
	// OpenImage returns errors.NotFound when the file does not exist
	OpenImage(ctx context.Context, logical string) (image.Image, error)
}

// Resolver maps logical asset paths onto a filesystem root
type Resolver struct {
	Root string
}

// collapsedScheme is Scheme after path.Clean has folded its double slash
const collapsedScheme = "res:/assets/"

// Resolve turns "res://assets/item/rope/rope.png" or "item/rope/rope.png" into
// a path under the root
func (r Resolver) Resolve(logical string) string {
	rel := trimScheme(logical)
	rel = path.Clean("/" + rel)
	return filepath.Join(r.Root, filepath.FromSlash(rel))
}

func trimScheme(logical string) string {
	if rel, ok := strings.CutPrefix(logical, Scheme); ok {
		return rel
	}
	return strings.TrimPrefix(logical, collapsedScheme)
}

// Logical joins path elements into a logical asset path
func Logical(elem ...string) string {
	return Scheme + path.Join(elem...)
}

// Join appends elem to a logical path, keeping the scheme intact
func Join(logical string, elem ...string) string {
	return Logical(append([]string{trimScheme(logical)}, elem...)...)
}

// FileStore is a Store backed by the local filesystem
type FileStore struct {
	resolver Resolver
}

// Config configures a FileStore
type Config struct {
	Root string
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg == nil {
		return vb.RequiredField("config").Build()
	}
	errors.ValidateRequired("root", cfg.Root, vb)
	return vb.Build()
}

// NewFileStore returns a store rooted at cfg.Root
func NewFileStore(cfg *Config) (*FileStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &FileStore{resolver: Resolver{Root: cfg.Root}}, nil
}

// Resolver returns the path resolver of the store
func (s *FileStore) Resolver() Resolver {
	return s.resolver
}

func (s *FileStore) ReadFile(_ context.Context, logical string) ([]byte, error) {
	p := s.resolver.Resolve(logical)
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("asset %s not found", logical).WithMeta("path", p)
		}
		return nil, errors.Wrapf(err, "failed to read asset %s", logical)
	}
	return data, nil
}

func (s *FileStore) OpenImage(ctx context.Context, logical string) (image.Image, error) {
	data, err := s.ReadFile(ctx, logical)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode image "+logical)
	}
	return img, nil
}

// Texture is an item texture read from the asset store on demand
type Texture struct {
	Store Store
	Path  string
}

// Image loads the texture
func (t Texture) Image(ctx context.Context) (image.Image, error) {
	if t.Store == nil {
		return nil, errors.FailedPrecondition("texture has no asset store")
	}
	return t.Store.OpenImage(ctx, t.Path)
}
