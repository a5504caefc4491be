// Command example stores clothing sizes in PostgreSQL with an enumfield.Field.
//
// Configure the connection with PG_URL or PG_HOST and friends, optionally in a .env file.
package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/enumfield"
	"github.com/xy-planning-network/enumfield/form"
	"github.com/xy-planning-network/enumfield/logger"
	"github.com/xy-planning-network/enumfield/postgres"
	"gorm.io/gorm"
)

var ClothingSizes = enumfield.MustNew(
	enumfield.Pair{Value: "xs", Name: "EXTRA_SMALL"},
	enumfield.Pair{Value: "s", Name: "SMALL"},
	enumfield.Pair{Value: "m", Name: "MEDIUM"},
	enumfield.Pair{Value: "l", Name: "LARGE"},
	enumfield.Pair{Value: "xl", Name: "EXTRA_LARGE"},
	enumfield.Pair{Value: "xxl", Name: "EXTRA_EXTRA_LARGE"},
)

func init() {
	err := ClothingSizes.SetUILabels(map[enumfield.Item]string{
		ClothingSizes.MustItem("EXTRA_SMALL"):       "Extra small",
		ClothingSizes.MustItem("SMALL"):             "Small",
		ClothingSizes.MustItem("MEDIUM"):            "Medium",
		ClothingSizes.MustItem("LARGE"):             "Large",
		ClothingSizes.MustItem("EXTRA_LARGE"):       "Extra large",
		ClothingSizes.MustItem("EXTRA_EXTRA_LARGE"): "Extra extra large",
	})
	if err != nil {
		panic(err)
	}
}

type Garment struct {
	ID   uint
	Name string
	Size enumfield.NullItem `gorm:"serializer:clothing_size"`
}

func main() {
	l := logger.New(logger.WithLevel(logger.LogLevelInfo))
	sizeField := enumfield.MustField(ClothingSizes, enumfield.WithLogger(l))
	sizeField.Register("clothing_size")

	cfg := postgres.NewCxnConfig()
	cfg.Logger = l

	db, err := postgres.Connect(cfg, []postgres.Migration{
		{
			Key: "create-garments",
			Executor: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE TABLE garments (id SERIAL PRIMARY KEY, name text NOT NULL)`).Error
			},
		},
		postgres.AddEnumColumn("garments", "size", sizeField),
	})
	if err != nil {
		l.Error("cannot connect", &logger.LogContext{Error: err})
		os.Exit(1)
	}

	g := Garment{Name: "T-shirt", Size: enumfield.Some(ClothingSizes.MustItem("MEDIUM"))}
	if err := db.Create(&g).Error; err != nil {
		l.Error("cannot save garment", &logger.LogContext{Error: err})
		os.Exit(1)
	}

	var found Garment
	if err := db.First(&found, g.ID).Error; err != nil {
		l.Error("cannot load garment", &logger.LogContext{Error: err})
		os.Exit(1)
	}

	fmt.Printf("%s is size %s\n", found.Name, found.Size)
	for _, opt := range form.Options(sizeField, found.Size) {
		mark := " "
		if opt.Selected {
			mark = "*"
		}
		fmt.Printf("[%s] %-4s %s\n", mark, opt.Value, opt.Label)
	}
}
