package enumfield

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm/schema"
)

var (
	_ schema.SerializerInterface = (*Field)(nil)

	itemType     = reflect.TypeOf(Item{})
	itemPtrType  = reflect.TypeOf((*Item)(nil))
	nullItemType = reflect.TypeOf(NullItem{})
)

// Register makes f available to gorm models under name.
//
// A model refers to it with a struct tag:
//
//	type Garment struct {
//		ID   uint
//		Size enumfield.NullItem `gorm:"serializer:clothing_size;size:3"`
//	}
//
// The struct field must be an Item, *Item or NullItem.
func (f *Field) Register(name string) { schema.RegisterSerializer(name, f) }

// Scan sets the struct field on dst from dbValue, a value read from the database.
//
// Scan implements gorm.io/gorm/schema.SerializerInterface.
func (f *Field) Scan(ctx context.Context, field *schema.Field, dst reflect.Value, dbValue any) error {
	ni, err := f.FromDB(dbValue)
	if err != nil {
		return err
	}

	var val reflect.Value
	switch field.FieldType {
	case nullItemType:
		val = reflect.ValueOf(ni)

	case itemType:
		val = reflect.ValueOf(ni.Item)

	case itemPtrType:
		val = reflect.Zero(itemPtrType)
		if ni.Valid {
			item := ni.Item
			val = reflect.ValueOf(&item)
		}

	default:
		return fmt.Errorf("%w: cannot scan an enum item into %s", ErrUnexpected, field.FieldType)
	}

	field.ReflectValueOf(ctx, dst).Set(val)

	return nil
}

// Value converts the struct field's value into what is written to the database.
//
// Value implements gorm.io/gorm/schema.SerializerValuerInterface.
func (f *Field) Value(_ context.Context, _ *schema.Field, _ reflect.Value, fieldValue any) (any, error) {
	return f.PrepValue(fieldValue)
}
