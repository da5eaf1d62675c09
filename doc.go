// Package typedjson implements a bidirectional, type-driven JSON codec.
//
// Application types do not describe JSON syntax. Instead they implement
// Marshaler and Unmarshaler, decomposing themselves into three container
// primitives: a keyed container of named fields, a sequence container of
// ordered elements, or a single-value slot holding one scalar. The codec
// drives the traversal, maintains a diagnostic path to the current position,
// and applies configurable strategies for timestamps, binary data, and
// non-finite floating-point values.
//
// A minimal round trip:
//
//	type point struct{ X, Y int64 }
//
//	func (p point) MarshalTyped(s *typedjson.EncodeState) error {
//		obj := s.Keyed()
//		obj.SetInt("x", p.X)
//		obj.SetInt("y", p.Y)
//		return nil
//	}
//
//	func (p *point) UnmarshalTyped(s *typedjson.DecodeState) error {
//		obj, err := s.Keyed()
//		if err != nil {
//			return err
//		}
//		if p.X, err = obj.Int("x"); err != nil {
//			return err
//		}
//		p.Y, err = obj.Int("y")
//		return err
//	}
//
//	b, err := typedjson.Marshal(point{X: 1, Y: 2}) // {"x":1,"y":2}
//
// Super-type delegation merges an enclosing type's fields into the same
// document: KeyedEncoder.Super returns a SuperEncoder the base type encodes
// through, and Close commits its value under the "super" key.
package typedjson
