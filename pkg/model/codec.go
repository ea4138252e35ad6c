package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// DumpState serializes state into indented JSON that StateFromJSON reads back losslessly
func DumpState(state State) (string, error) {
	bytes, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return "", fmt.Errorf("cannot serialize state %q: %w", state.Name, err)
	}
	return string(bytes), nil
}

func StateFromJSON(data []byte) (State, error) {
	var stateJson map[string]any
	if err := json.Unmarshal(data, &stateJson); err != nil {
		return State{}, err
	}

	var state State
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &state,
	})
	if err != nil {
		return State{}, err
	}
	if err := decoder.Decode(stateJson); err != nil {
		return State{}, fmt.Errorf("cannot decode state: %w", err)
	}
	return state, nil
}

func StateFromFile(file string) (State, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return State{}, err
	}
	return StateFromJSON(bytes)
}
