package leveldb

import (
	"fmt"
	"reflect"

	"github.com/docker/go-units"
	"github.com/mitchellh/mapstructure"

	"github.com/wooyang2018/corekv/storage"
)

// legacy option bag keys, sizes in MiB
const (
	optCache = "cache"
	optFds   = "fds"
)

// decodeOptions turns an option bag into storage.Options. Size fields may
// be given as integers (bytes) or as human readable strings like "8MiB".
// The legacy "cache" (MiB) and "fds" keys are honored when the structured
// keys are absent.
func decodeOptions(bag map[string]interface{}) (*storage.Options, error) {
	options := storage.DefaultOptions()
	if len(bag) == 0 {
		return options, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       SizeHookFunc(),
		WeaklyTypedInput: true,
		Result:           options,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(bag); err != nil {
		return nil, badOptions("%v", err)
	}

	if v, ok := bag[optCache]; ok && options.BlockCache == 0 {
		cache, ok := v.(int)
		if !ok || cache < 0 {
			return nil, badOptions("cache must be a non-negative int, got %v", v)
		}
		options.BlockCache = cache / 2 * units.MiB
		if options.WriteBuffer == 0 {
			// Two of these are used internally
			options.WriteBuffer = cache / 4 * units.MiB
		}
	}
	if v, ok := bag[optFds]; ok && options.MaxOpenFiles == 0 {
		fds, ok := v.(int)
		if !ok || fds < 0 {
			return nil, badOptions("fds must be a non-negative int, got %v", v)
		}
		options.MaxOpenFiles = fds
	}
	return options, nil
}

// SizeHookFunc converts human readable sizes ("4KiB", "64MB") into byte
// counts when the target field is an int.
func SizeHookFunc() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Int {
			return data, nil
		}
		size, err := units.RAMInBytes(data.(string))
		if err != nil {
			return nil, fmt.Errorf("bad size %q: %v", data, err)
		}
		return int(size), nil
	}
}

func badOptions(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", storage.ErrBadOptions, fmt.Sprintf(format, args...))
}
