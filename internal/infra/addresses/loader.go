package addresses

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

// LoadCSV reads address rows into the repository and returns how many were
// added. It runs to completion before the server starts accepting traffic;
// loading lazily left a cold-start window where every search came back empty.
//
// Expected columns: address,postcode,city,county (header row required).
func LoadCSV(repo *Repository, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open address csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read address csv header: %w", err)
	}

	col := columnIndex(header)
	if col["address"] < 0 {
		return 0, fmt.Errorf("address csv %s has no address column", path)
	}

	added := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return added, fmt.Errorf("read address csv row: %w", err)
		}

		address := field(record, col["address"])
		if address == "" {
			continue
		}

		before := repo.Count()
		repo.Add(entity.NewPropertyAddress(
			address,
			field(record, col["postcode"]),
			field(record, col["city"]),
			field(record, col["county"]),
		))
		if repo.Count() > before {
			added++
		}
	}

	return added, nil
}

// Seed installs the hard-coded fallback list used when no CSV is configured.
func Seed(repo *Repository) {
	for _, row := range seedAddresses {
		repo.Add(entity.NewPropertyAddress(row[0], row[1], row[2], row[3]))
	}
}

var seedAddresses = [][4]string{
	{"12 Oxford Street", "W1D 1BS", "London", "Greater London"},
	{"45 Oxford Road", "M1 5AN", "Manchester", "Greater Manchester"},
	{"3 Victoria Terrace", "OX1 2JD", "Oxford", "Oxfordshire"},
	{"78 High Street", "B90 2BA", "Solihull", "West Midlands"},
	{"21 Church Lane", "B97 4AB", "Redditch", "Worcestershire"},
	{"9 Station Approach", "RG1 1LG", "Reading", "Berkshire"},
	{"102 Queens Road", "BS8 1LN", "Bristol", "Bristol"},
	{"56 Park Avenue", "LS8 2JH", "Leeds", "West Yorkshire"},
	{"14 Castle Street", "EH2 3AH", "Edinburgh", "Midlothian"},
	{"33 Marine Parade", "BN2 1TL", "Brighton", "East Sussex"},
	{"67 Mill Road", "CB1 2AS", "Cambridge", "Cambridgeshire"},
	{"88 King Street", "NE1 3DQ", "Newcastle upon Tyne", "Tyne and Wear"},
}

func columnIndex(header []string) map[string]int {
	col := map[string]int{"address": -1, "postcode": -1, "city": -1, "county": -1}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := col[key]; ok {
			col[key] = i
		}
	}
	return col
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
