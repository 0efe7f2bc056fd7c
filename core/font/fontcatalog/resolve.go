package fontcatalog

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/npillmayer/hershey/core"
	"github.com/npillmayer/hershey/core/font"
	"github.com/npillmayer/schuko/gconf"
)

// As font loading may be a time-consuming task (SVG fonts may live on a
// remote server), resolving works in an async/await fashion by returning
// a promise. The call to the promise-function will block until loading
// has completed.

// FontPromise is the await-side of an asynchronous font resolution.
type FontPromise interface {
	Font() (*font.Font, error)
}

type fontPlusErr struct {
	font *font.Font
	err  error
}

type fontLoader struct {
	await func(ctx context.Context) (*font.Font, error)
}

func (loader fontLoader) Font() (*font.Font, error) {
	return loader.await(context.Background())
}

// ResolveSVGFont asynchronously loads an SVG font from a local file path
// or an http(s) URL and registers it with the catalog. Remote sources are
// downloaded into the user's cache directory and re-used from there on
// subsequent calls.
func (c *Catalog) ResolveSVGFont(loc string) FontPromise {
	// buffered, so the loader finishes even if the await side gives up
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		result := fontPlusErr{}
		var src []byte
		var err error
		if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
			src, err = fetchCachedFont(loc)
		} else {
			src, err = os.ReadFile(loc)
			if err != nil {
				err = core.WrapError(err, core.EMISSING, "font file not found: %s", loc)
			}
		}
		if err == nil {
			var id string
			if id, err = c.RegisterOutlineFont(src); err == nil {
				result.font = c.Font(id)
			}
		}
		result.err = err
		ch <- result
		close(ch)
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.Font, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

// fetchCachedFont downloads url into the user's cache directory, unless a
// previous call already has, and returns the file's content.
func fetchCachedFont(url string) ([]byte, error) {
	cachedir, err := cacheDirPath("fonts")
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "no cache directory for font downloads")
	}
	filepath := path.Join(cachedir, path.Base(url))
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		tracer().Infof("downloading font %s", url)
		if err := downloadCachedFile(filepath, url); err != nil {
			return nil, core.WrapError(err, core.ECONNECTION, "cannot download font: %s", url)
		}
	}
	return os.ReadFile(filepath)
}

// downloadCachedFile will download a url to a local file (usually located
// in the user's cache directory).
func downloadCachedFile(filepath string, url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	out, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, resp.Body)
	return err
}

// cacheDirPath checks and possibly creates a folder in the user's cache
// directory. The base cache directory is taken from `os.UserCacheDir()`,
// plus an application specific key, taken as `app-key` from the global
// configuration.
func cacheDirPath(subfolders ...string) (string, error) {
	if gconf.GetString("app-key") == "" {
		tracer().Errorf("application key is not set")
	}
	cachedir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	subs := path.Join(subfolders...)
	cachedir = path.Join(cachedir, gconf.GetString("app-key"), subs)
	tracer().Infof("caching in %s", cachedir)
	_, err = os.Stat(cachedir)
	if os.IsNotExist(err) {
		err = os.MkdirAll(cachedir, 0755)
		if err != nil {
			return "", err
		}
	}
	return cachedir, nil
}
