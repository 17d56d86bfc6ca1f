package tool

import (
	"fmt"

	"github.com/google/uuid"

	"devtoolbox/internal/model"
	"devtoolbox/pkg/utils"
)

func init() {
	Register(&uuidTool{})
}

// uuidTool generates UUIDs. Version 4 is the default; v1 and v5
// (namespace + name) are supported. Count is clamped into [1, 1000].
type uuidTool struct{}

func (t *uuidTool) Name() string     { return "uuid" }
func (t *uuidTool) Category() string { return "generator" }

var uuidNamespaces = map[string]uuid.UUID{
	"dns":  uuid.NameSpaceDNS,
	"url":  uuid.NameSpaceURL,
	"oid":  uuid.NameSpaceOID,
	"x500": uuid.NameSpaceX500,
}

func (t *uuidTool) Apply(in model.GenericInput, settings model.Settings) (model.GenericOutput, error) {
	count := utils.ClampInt(int(numField(in, "count", 1)), 1, 1000)

	version := stringField(in, "version")
	switch version {
	case "":
		version = "v4"
	case "v1", "v4", "v5":
	default:
		version = "v4"
	}

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		switch version {
		case "v1":
			id, err := uuid.NewUUID()
			if err != nil {
				return nil, fmt.Errorf("uuid v1 generation failed: %w", err)
			}
			ids = append(ids, id.String())
		case "v5":
			ns, ok := uuidNamespaces[stringField(in, "namespace")]
			if !ok {
				return nil, fmt.Errorf("v5 requires a namespace: dns, url, oid or x500")
			}
			name := stringField(in, "name")
			if name == "" {
				return nil, fmt.Errorf("v5 requires a name")
			}
			ids = append(ids, uuid.NewSHA1(ns, []byte(name)).String())
		default:
			ids = append(ids, uuid.New().String())
		}
	}

	return model.GenericOutput{
		"uuids":   ids,
		"count":   count,
		"version": version,
	}, nil
}
