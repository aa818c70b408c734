// Package services implements the driving ports: the index search
// pipeline and the document acquisition pipeline. Services hold the
// decision logic (sort-mode resolution, result filtering, content-type
// branching, the OCR trigger) and delegate all I/O to driven ports.
package services
