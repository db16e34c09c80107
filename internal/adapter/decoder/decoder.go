// Package decoder contains the default [domain.Decoder] implementation.
package decoder

import (
	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/gedq/domain"
	"github.com/vinicius-lino-figueiredo/gedq/pkg/structure"
)

// Decoder implements domain.Decoder.
type Decoder struct {
	tagName string
}

// NewDecoder returns a new implementation of domain.Decoder. Struct fields are
// matched by the tag named tagName, or by [structure.TagName] if none is
// given.
func NewDecoder(tagName ...string) domain.Decoder {
	tag := structure.TagName
	if len(tagName) > 0 && tagName[0] != "" {
		tag = tagName[0]
	}
	return &Decoder{tagName: tag}
}

// Decode implements domain.Decoder.
func (d *Decoder) Decode(src any, tgt any) error {
	if tgt == nil {
		return domain.ErrTargetNil
	}
	if reflect.ValueNoEscapeOf(tgt).Kind() != reflect.Ptr {
		return domain.ErrNonPointer
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: d.tagName,
		Result:  tgt,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(src); err != nil {
		return domain.ErrDecode{Source: src, Target: tgt, Reason: err}
	}
	return nil
}
