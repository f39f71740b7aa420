package manifest

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// devServicesTemplate defines the local development services: a Postgres
// database and a Redis cache. Only the database name varies per workspace.
const devServicesTemplate = `services:
  postgres:
    image: postgres:16-alpine
    environment:
      POSTGRES_USER: postgres
      POSTGRES_PASSWORD: postgres
      POSTGRES_DB: {{.DBName}}
    ports:
      - "5432:5432"
    volumes:
      - postgres-data:/var/lib/postgresql/data

  redis:
    image: redis:7-alpine
    ports:
      - "6379:6379"

volumes:
  postgres-data:
`

var devServicesTmpl = template.Must(template.New("dev-services").Parse(devServicesTemplate))

// RenderDevServices produces the docker compose definition for the local
// development services. The database name is the workspace name with hyphens
// replaced by underscores, since Postgres identifiers cannot contain hyphens.
func RenderDevServices(workspaceName string) (string, error) {
	data := struct{ DBName string }{
		DBName: strings.ReplaceAll(workspaceName, "-", "_"),
	}

	var buf bytes.Buffer
	if err := devServicesTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering dev services definition: %w", err)
	}
	return buf.String(), nil
}
