// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package tree

import (
	"fmt"

	"github.com/creachadair/rjson"
	"github.com/creachadair/rjson/feeder"
)

// frame tracks one open container while Decode walks a Parser's event
// stream, mirroring the explicit stack a pull-based tree builder needs in
// place of a push-style Handler's implicit call stack.
type frame struct {
	obj     *Object // set when this frame is an object
	arr     *Array  // set when this frame is an array
	key     string  // pending field name of an object frame
	haveKey bool
}

// Decode drains p, building a Value tree for exactly one top-level JSON
// value. It returns once that value is complete; it does not itself drive
// p through to EndOfStream, so a streaming-mode caller may call Decode
// again for the next value in the same Parser.
func Decode(p *rjson.Parser) (Value, error) {
	var stack []*frame
	var result Value
	var haveResult bool

	reduce := func(v Value) error {
		if len(stack) == 0 {
			if haveResult {
				return fmt.Errorf("tree: unexpected value after top-level value is complete")
			}
			result, haveResult = v, true
			return nil
		}
		top := stack[len(stack)-1]
		switch {
		case top.obj != nil:
			if !top.haveKey {
				return fmt.Errorf("tree: object value with no preceding field name")
			}
			top.obj.Members = append(top.obj.Members, Member{Key: top.key, Value: v})
			top.haveKey = false
		case top.arr != nil:
			top.arr.Values = append(top.arr.Values, v)
		}
		return nil
	}

	for {
		ev, err := p.Advance()
		if err != nil {
			return nil, err
		}
		switch ev {
		case rjson.StartObject:
			stack = append(stack, &frame{obj: &Object{}})

		case rjson.StartArray:
			stack = append(stack, &frame{arr: &Array{}})

		case rjson.EndObject:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := reduce(top.obj); err != nil {
				return nil, err
			}

		case rjson.EndArray:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := reduce(top.arr); err != nil {
				return nil, err
			}

		case rjson.FieldName:
			s, err := p.String()
			if err != nil {
				return nil, err
			}
			top := stack[len(stack)-1]
			top.key, top.haveKey = s, true

		case rjson.ValueString:
			s, err := p.String()
			if err != nil {
				return nil, err
			}
			if err := reduce(String(s)); err != nil {
				return nil, err
			}

		case rjson.ValueInt:
			b, err := p.Bytes()
			if err != nil {
				return nil, err
			}
			if err := reduce(Integer(string(b))); err != nil {
				return nil, err
			}

		case rjson.ValueFloat:
			b, err := p.Bytes()
			if err != nil {
				return nil, err
			}
			if err := reduce(Number(string(b))); err != nil {
				return nil, err
			}

		case rjson.ValueTrue:
			if err := reduce(Bool(true)); err != nil {
				return nil, err
			}

		case rjson.ValueFalse:
			if err := reduce(Bool(false)); err != nil {
				return nil, err
			}

		case rjson.ValueNull:
			if err := reduce(Null{}); err != nil {
				return nil, err
			}

		case rjson.EndOfStream:
			if !haveResult {
				return nil, fmt.Errorf("tree: no value found before end of input")
			}
			return result, nil
		}

		if haveResult && len(stack) == 0 {
			return result, nil
		}
	}
}

// DecodeBytes decodes exactly one top-level JSON value out of data.
func DecodeBytes(data []byte, opts rjson.Options) (Value, error) {
	p := rjson.NewParser(feeder.NewSliceFeeder(data), opts)
	return Decode(p)
}
