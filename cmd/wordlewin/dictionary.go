package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

type API string

func (a *API) Set(val string) error {
	for _, api := range allAPIs {
		if val == string(api) {
			*a = api
			return nil
		}
	}
	return fmt.Errorf("invalid API: %s", val)
}

func (a API) String() string {
	return string(a)
}

func (a *API) Type() string {
	return "API"
}

const (
	APIFreeDictionaryAPI API = "free_dictionary"
	// APINone skips the definition lookup.
	APINone API = "none"
)

var (
	_       pflag.Value = (*API)(nil)
	allAPIs             = []API{APIFreeDictionaryAPI, APINone}
)
