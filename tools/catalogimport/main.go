package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"SmartCart/app/common/snowflake"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// A tiny helper to import a product catalog from JSON into MySQL.
// Usage:
//   go run ./tools/catalogimport \
//     -dsn  "root:smartcart@tcp(mysql:3306)/smartcart?charset=utf8mb4&parseTime=True&loc=Local" \
//     -file "manifest/catalog.json"

type catalogProduct struct {
	Name         string                    `json:"name"`
	Price        float64                   `json:"price"`
	Image        string                    `json:"image"`
	ExpiryDays   int64                     `json:"expiry_days"`
	GreenScore   int64                     `json:"green_score"`
	Alternatives map[string]map[string]any `json:"alternatives"`
}

func main() {
	dsn := flag.String("dsn", "", "MySQL DSN for the catalog database")
	file := flag.String("file", "manifest/catalog.json", "path to the catalog JSON to import")
	truncate := flag.Bool("truncate", false, "truncate the products table before import")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("-dsn is required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("read catalog: %v", err)
	}
	var catalog []catalogProduct
	if err := json.Unmarshal(raw, &catalog); err != nil {
		log.Fatalf("parse catalog: %v", err)
	}

	ctx := context.Background()
	conn := sqlx.NewMysql(*dsn)

	if *truncate {
		if _, err := conn.ExecCtx(ctx, "delete from `products`"); err != nil {
			log.Fatalf("truncate products: %v", err)
		}
	}

	for _, p := range catalog {
		alternatives := "{}"
		if len(p.Alternatives) > 0 {
			enc, err := json.Marshal(p.Alternatives)
			if err != nil {
				log.Fatalf("marshal alternatives for %q: %v", p.Name, err)
			}
			alternatives = string(enc)
		}

		_, err := conn.ExecCtx(ctx,
			"insert into `products` (`id`, `name`, `price`, `image`, `expiry_days`, `green_score`, `alternatives`) values (?, ?, ?, ?, ?, ?, ?)",
			snowflake.Next(), p.Name, p.Price, p.Image, p.ExpiryDays, p.GreenScore, alternatives)
		if err != nil {
			log.Fatalf("insert %q: %v", p.Name, err)
		}
	}

	log.Printf("imported %d products from %s", len(catalog), *file)
}
