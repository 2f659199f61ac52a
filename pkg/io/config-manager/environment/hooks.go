package configmanager

import (
	"reflect"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
)

// decodeHook decodes durations such as "90s" and comma-separated lists such as
// "docker, kind" coming from the config file or the environment.
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		trimmedSliceDecodeHook(),
	)
}

// trimmedSliceDecodeHook splits a string on commas into a []string, dropping
// surrounding whitespace and empty elements.
func trimmedSliceDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeFor[[]string]() {
			return data, nil
		}

		raw, _ := data.(string)

		items := []string{}

		for item := range strings.SplitSeq(raw, ",") {
			item = strings.TrimSpace(item)
			if item != "" {
				items = append(items, item)
			}
		}

		return items, nil
	}
}
