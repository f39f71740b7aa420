package workspace

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/monoforge-labs/monoforge/internal/fsops"
	"github.com/monoforge-labs/monoforge/internal/manifest"
)

// UnitKind classifies a package unit.
type UnitKind string

const (
	KindLibrary    UnitKind = "library"
	KindDataAccess UnitKind = "data-access"
	KindQueue      UnitKind = "service-queue"
)

// PackageUnit describes a library-like workspace member as data. It is
// realized onto disk by provisionUnit: directory, manifest, files, install —
// fully, before the next unit begins.
type PackageUnit struct {
	Name    string
	Kind    UnitKind
	Scripts map[string]string // merged over the base build/check-types/dev scripts
	Files   map[string]string // relative path → content
	Deps    map[string]string
	DevDeps map[string]string
}

// baseTSConfig is the shared compiler baseline every unit extends.
const baseTSConfig = `{
  "$schema": "https://json.schemastore.org/tsconfig",
  "compilerOptions": {
    "target": "ES2022",
    "module": "NodeNext",
    "moduleResolution": "NodeNext",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "declaration": true,
    "declarationMap": true,
    "isolatedModules": true
  }
}
`

const dbIndexTS = `import { drizzle } from "drizzle-orm/postgres-js";
import postgres from "postgres";

import * as schema from "./schema";

const connectionString = process.env.DATABASE_URL;
if (!connectionString) {
  throw new Error("DATABASE_URL is not set");
}

const client = postgres(connectionString);

export const db = drizzle(client, { schema });
export * from "./schema";
`

const dbSchemaTS = `import { pgTable, serial, text, timestamp } from "drizzle-orm/pg-core";

export const users = pgTable("users", {
  id: serial("id").primaryKey(),
  email: text("email").notNull().unique(),
  createdAt: timestamp("created_at").defaultNow().notNull(),
});
`

const drizzleConfigTS = `import { defineConfig } from "drizzle-kit";

export default defineConfig({
  schema: "./src/schema.ts",
  out: "./drizzle",
  dialect: "postgresql",
  dbCredentials: {
    url: process.env.DATABASE_URL ?? "",
  },
});
`

const queueIndexTS = `import { Queue, Worker, type Processor } from "bullmq";

const connection = {
  url: process.env.REDIS_URL ?? "redis://localhost:6379",
};

const prefix = process.env.NODE_ENV === "production" ? "prod" : "dev";

export function createQueue(name: string): Queue {
  return new Queue(name, { connection, prefix });
}

export function createWorker<T>(name: string, processor: Processor<T>): Worker<T> {
  return new Worker(name, processor, { connection, prefix });
}
`

// DataAccessUnit returns the built-in database access unit.
func DataAccessUnit(scope string) *PackageUnit {
	return &PackageUnit{
		Name: "db",
		Kind: KindDataAccess,
		Scripts: map[string]string{
			"db:generate": "drizzle-kit generate",
			"db:migrate":  "drizzle-kit migrate",
			"db:studio":   "drizzle-kit studio",
		},
		Files: map[string]string{
			"src/index.ts":      dbIndexTS,
			"src/schema.ts":     dbSchemaTS,
			"drizzle.config.ts": drizzleConfigTS,
		},
		Deps: map[string]string{
			"drizzle-orm": "latest",
			"postgres":    "latest",
		},
		DevDeps: map[string]string{
			"drizzle-kit":                "latest",
			"tsup":                       "latest",
			"typescript":                 "latest",
			scope + "/typescript-config": "workspace:*",
		},
	}
}

// QueueUnit returns the built-in task queue unit.
func QueueUnit(scope string) *PackageUnit {
	return &PackageUnit{
		Name: "queue",
		Kind: KindQueue,
		Files: map[string]string{
			"src/index.ts": queueIndexTS,
		},
		Deps: map[string]string{
			"bullmq": "latest",
		},
		DevDeps: map[string]string{
			"tsup":                       "latest",
			"typescript":                 "latest",
			scope + "/typescript-config": "workspace:*",
		},
	}
}

// provisionUnit realizes one package unit: directory, manifest, type-check
// configuration, source files, then a dependency install scoped to the
// unit's own directory.
func (o *Orchestrator) provisionUnit(root string, u *PackageUnit) error {
	dir := filepath.Join(root, "packages", u.Name)
	if err := fsops.EnsureDir(dir); err != nil {
		return err
	}

	scripts := map[string]string{
		"build":       "tsup src/index.ts --format esm --dts",
		"check-types": "tsc --noEmit",
		"dev":         "tsup src/index.ts --format esm --dts --watch",
	}
	for k, v := range u.Scripts {
		scripts[k] = v
	}

	p := &manifest.PackageJSON{
		Name:    o.Scope + "/" + u.Name,
		Private: true,
		Type:    "module",
		Exports: map[string]manifest.Export{
			".": {Types: "./src/index.ts", Default: "./src/index.ts"},
		},
		Scripts:         scripts,
		Dependencies:    u.Deps,
		DevDependencies: u.DevDeps,
	}
	if err := manifest.WritePackageJSON(filepath.Join(dir, "package.json"), p, o.Out); err != nil {
		return err
	}

	if err := manifest.WriteTSConfig(filepath.Join(dir, "tsconfig.json"), manifest.UnitTSConfig(o.Scope)); err != nil {
		return err
	}

	// Sorted paths keep file creation order deterministic.
	paths := make([]string, 0, len(u.Files))
	for rel := range u.Files {
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	for _, rel := range paths {
		if err := fsops.WriteFile(filepath.Join(dir, rel), u.Files[rel]); err != nil {
			return err
		}
	}

	if err := o.Runner.Run(dir, o.PM, "install"); err != nil {
		return fmt.Errorf("installing %s dependencies: %w", u.Name, err)
	}
	return nil
}
