// Command convert turns a GeoJSON extract of fitness studios into the CSV
// catalog schema the API loads at startup. Only Point features are kept.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
)

var columns = []string{
	"name",
	"addr:city",
	"longitude",
	"latitude",
	"opening_hours",
	"addr:country",
	"contact:phone",
	"website",
	"addr:street",
	"addr:housenumber",
	"addr:postcode",
}

type featureCollection struct {
	Features []struct {
		Properties map[string]any `json:"properties"`
		Geometry   struct {
			Type        string    `json:"type"`
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

func main() {
	in := flag.String("in", "", "Path to the GeoJSON file to convert")
	out := flag.String("out", "", "Path of the CSV file to write")
	flag.Parse()

	if *in == "" || *out == "" {
		fmt.Println("Error: --in and --out flags are required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Printf("Error reading input: %v\n", err)
		os.Exit(1)
	}

	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		fmt.Printf("Error parsing GeoJSON: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Printf("Error creating output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		fmt.Printf("Error writing header: %v\n", err)
		os.Exit(1)
	}

	written, skipped := 0, 0
	for _, feature := range fc.Features {
		if feature.Geometry.Type != "Point" || len(feature.Geometry.Coordinates) < 2 {
			skipped++
			continue
		}

		record := make([]string, len(columns))
		for i, col := range columns {
			switch col {
			case "longitude":
				record[i] = strconv.FormatFloat(feature.Geometry.Coordinates[0], 'f', -1, 64)
			case "latitude":
				record[i] = strconv.FormatFloat(feature.Geometry.Coordinates[1], 'f', -1, 64)
			default:
				if v, ok := feature.Properties[col].(string); ok {
					record[i] = v
				}
			}
		}
		if err := w.Write(record); err != nil {
			fmt.Printf("Error writing record: %v\n", err)
			os.Exit(1)
		}
		written++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Printf("Error flushing output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Converted %d features (%d skipped, not points)\n", written, skipped)
}
