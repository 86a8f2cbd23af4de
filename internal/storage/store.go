package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/nucviz/internal/figure"
	log "github.com/sirupsen/logrus"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

var ErrNotFound = errors.New("storage: figure not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type FigureMetadata struct {
	ID        string            `json:"id"`
	Figure    string            `json:"figure"`
	Stem      string            `json:"stem"`
	Title     string            `json:"title"`
	XLabel    string            `json:"x_label,omitempty"`
	YLabel    string            `json:"y_label,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Surface   bool              `json:"surface"`
	Params    map[string]string `json:"params,omitempty"`
	Facts     []figure.Fact     `json:"facts,omitempty"`
}

// Columns is a named column table as stored in series.csv. Missing samples
// are NaN.
type Columns struct {
	Names  []string
	Values [][]float64
}

// Len is the number of rows.
func (c *Columns) Len() int {
	if len(c.Values) == 0 {
		return 0
	}
	return len(c.Values[0])
}

// FigureColumns flattens a figure into columns: the shared abscissa then one
// column per series, or the sampled grid for a surface.
func FigureColumns(fig *figure.Figure) *Columns {
	if fig.IsSurface() {
		s := fig.Surface
		names := []string{"theta", "phi", "ylm", "r", "x", "y", "z"}
		mats := [][][]float64{s.Theta, s.Phi, s.Harmonic, s.Radius, s.X, s.Y, s.Z}
		rows, cols := s.Shape()
		c := &Columns{Names: names, Values: make([][]float64, len(mats))}
		for k, m := range mats {
			flat := make([]float64, 0, rows*cols)
			for i := 0; i < rows; i++ {
				flat = append(flat, m[i]...)
			}
			c.Values[k] = flat
		}
		return c
	}

	xs, cols := fig.Aligned()
	c := &Columns{Names: []string{"x"}, Values: [][]float64{xs}}
	for i, s := range fig.Series {
		name := s.Name
		if name == "" {
			name = s.Label
		}
		c.Names = append(c.Names, name)
		c.Values = append(c.Values, cols[i])
	}
	return c
}

// Save archives fig under <base>/<stem>_<unix>/ and returns the new ID.
// Saves of the same stem within one second get a _<n> suffix.
func (s *Store) Save(fig *figure.Figure, params map[string]string) (string, error) {
	now := time.Now()
	id, dir, err := s.reserve(fmt.Sprintf("%s_%d", fig.Stem, now.Unix()))
	if err != nil {
		return "", err
	}

	meta := FigureMetadata{
		ID:        id,
		Figure:    fig.Name,
		Stem:      fig.Stem,
		Title:     fig.Title,
		XLabel:    fig.XLabel,
		YLabel:    fig.YLabel,
		Timestamp: now,
		Surface:   fig.IsSurface(),
		Params:    params,
		Facts:     fig.Facts,
	}

	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(dir, seriesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, FigureColumns(fig)); err != nil {
		return "", err
	}
	log.WithFields(log.Fields{"id": id, "dir": dir}).Info("figure archived")
	return id, nil
}

// reserve creates a fresh directory for base, appending a counter when
// base is taken.
func (s *Store) reserve(base string) (string, string, error) {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", "", err
	}
	id := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !os.IsExist(err) {
			return "", "", err
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

// List returns every archived figure, oldest first.
func (s *Store) List() ([]FigureMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []FigureMetadata{}, nil
		}
		return nil, err
	}

	out := make([]FigureMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			log.WithError(err).WithField("dir", entry.Name()).Debug("skipping entry")
			continue
		}
		out = append(out, *meta)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (s *Store) Load(id string) (*FigureMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta FigureMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return &meta, nil
}

// SeriesPath is the location of the stored CSV for id.
func (s *Store) SeriesPath(id string) string {
	return filepath.Join(s.baseDir, id, seriesFile)
}

func (s *Store) LoadSeries(id string) (*Columns, error) {
	file, err := os.Open(s.SeriesPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &Columns{}, nil
	}

	c := &Columns{Names: records[0], Values: make([][]float64, len(records[0]))}
	for _, record := range records[1:] {
		for j := range c.Names {
			v := math.NaN()
			if j < len(record) && record[j] != "" {
				if f, err := strconv.ParseFloat(record[j], 64); err == nil {
					v = f
				}
			}
			c.Values[j] = append(c.Values[j], v)
		}
	}
	return c, nil
}
