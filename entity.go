// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jmdict

import (
	"bytes"
	"regexp"
)

// entityRegex matches general entity declarations in a DTD internal subset.
// Parameter entities (<!ENTITY % name ...>) are not matched.
var entityRegex = regexp.MustCompile(`<!ENTITY\s+([^\s%"'<>]+)\s+(?:"([^"]*)"|'([^']*)')\s*>`)

var doctypePrefix = []byte("DOCTYPE")

// parseEntities adds the general entities declared in a <!DOCTYPE ...>
// directive to entities. If expand is false each entity maps to its own
// name. Directives other than DOCTYPE are ignored.
func parseEntities(directive []byte, expand bool, entities map[string]string) {
	if !bytes.HasPrefix(bytes.TrimSpace(directive), doctypePrefix) {
		return
	}

	for _, m := range entityRegex.FindAllSubmatch(directive, -1) {
		name := string(m[1])
		if _, ok := entities[name]; ok {
			// The first declaration of an entity is binding.
			continue
		}
		if !expand {
			entities[name] = name
			continue
		}
		value := m[2]
		if value == nil {
			value = m[3]
		}
		entities[name] = string(value)
	}
}
