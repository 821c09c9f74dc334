// Command seed loads the sample electronic parts into the database and can
// optionally generate additional random parts for load testing the UI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/EETech-Group/parts-inventory/internal/config"
	"github.com/EETech-Group/parts-inventory/internal/part"
)

var categories = []string{
	"Resistor", "Capacitor", "IC", "Transistor", "Diode", "Connector",
	"Switch", "Relay", "Transformer", "Crystal", "Oscillator", "Other",
}

func main() {
	n := flag.Int("n", 0, "number of extra random parts to generate")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] connect: %v", err)
	}
	defer pool.Close()

	repo := part.NewPGRepo(pool)

	samples := sampleParts()
	for i := range samples {
		if err := repo.Create(ctx, &samples[i]); err != nil {
			log.Fatalf("seed %q: %v", samples[i].PartNumber, err)
		}
	}

	for i := 0; i < *n; i++ {
		p := randomPart()
		if err := repo.Create(ctx, &p); err != nil {
			log.Fatalf("seed random part: %v", err)
		}
	}

	log.Printf("seeded %d parts", len(samples)+*n)
}

func sampleParts() []part.Part {
	return []part.Part{
		{
			PartNumber:   "R-1K-1/4W",
			Name:         "1K Ohm Resistor",
			Description:  "1/4 Watt carbon film resistor",
			Manufacturer: "Vishay",
			Category:     "Resistor",
			Quantity:     100,
			UnitPrice:    decimal.RequireFromString("0.05"),
			Location:     "A1-B2",
			DatasheetURL: "https://example.com/datasheet/r-1k.pdf",
			Specifications: map[string]any{
				"resistance":  "1K Ohm",
				"tolerance":   "5%",
				"powerRating": "1/4W",
				"package":     "Axial",
			},
		},
		{
			PartNumber:   "C-100uF-25V",
			Name:         "100µF Electrolytic Capacitor",
			Description:  "100 microfarad electrolytic capacitor, 25V rating",
			Manufacturer: "Panasonic",
			Category:     "Capacitor",
			Quantity:     50,
			UnitPrice:    decimal.RequireFromString("0.25"),
			Location:     "B3-C1",
			DatasheetURL: "https://example.com/datasheet/c-100uf.pdf",
			Specifications: map[string]any{
				"capacitance": "100µF",
				"voltage":     "25V",
				"tolerance":   "20%",
				"package":     "Radial",
			},
		},
		{
			PartNumber:   "IC-555-TIMER",
			Name:         "555 Timer IC",
			Description:  "Classic 555 timer integrated circuit",
			Manufacturer: "Texas Instruments",
			Category:     "IC",
			Quantity:     25,
			UnitPrice:    decimal.RequireFromString("0.75"),
			Location:     "D2-E1",
			DatasheetURL: "https://example.com/datasheet/555.pdf",
			Specifications: map[string]any{
				"type":    "Timer",
				"pins":    8,
				"package": "DIP-8",
				"voltage": "4.5V to 16V",
			},
		},
		{
			PartNumber:   "LED-RED-5MM",
			Name:         "Red LED 5mm",
			Description:  "Standard 5mm red LED",
			Manufacturer: "Kingbright",
			Category:     "Diode",
			Quantity:     200,
			UnitPrice:    decimal.RequireFromString("0.15"),
			Location:     "F1-G2",
			Specifications: map[string]any{
				"color":          "Red",
				"size":           "5mm",
				"forwardVoltage": "2.1V",
				"forwardCurrent": "20mA",
			},
		},
		{
			PartNumber:   "CONN-DB9-MALE",
			Name:         "DB9 Male Connector",
			Description:  "9-pin D-sub male connector",
			Manufacturer: "Amphenol",
			Category:     "Connector",
			Quantity:     15,
			UnitPrice:    decimal.RequireFromString("2.50"),
			Location:     "H3-I1",
			Specifications: map[string]any{
				"type":   "D-sub",
				"pins":   9,
				"gender": "Male",
				"shell":  "Metal",
			},
		},
	}
}

func randomPart() part.Part {
	category := gofakeit.RandomString(categories)
	return part.Part{
		PartNumber:   fmt.Sprintf("%s-%s", strings.ToUpper(category[:min(3, len(category))]), gofakeit.DigitN(5)),
		Name:         gofakeit.ProductName(),
		Description:  gofakeit.Sentence(8),
		Manufacturer: gofakeit.Company(),
		Category:     category,
		Quantity:     gofakeit.Number(0, 500),
		UnitPrice:    decimal.NewFromFloat(gofakeit.Price(0.01, 25)),
		Location:     fmt.Sprintf("%c%d-%c%d", 'A'+rune(gofakeit.Number(0, 7)), gofakeit.Number(1, 9), 'A'+rune(gofakeit.Number(0, 7)), gofakeit.Number(1, 9)),
		Specifications: map[string]any{
			"package": gofakeit.RandomString([]string{"Axial", "Radial", "DIP-8", "SOIC", "TO-92"}),
		},
	}
}
