// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/gopher6502/logger"
)

// Address of the stats server.
const Address = "localhost:12650"

const url = "/debug/statsview"

// Launch the stats server in a new goroutine. The returned function stops
// the server.
func Launch(output io.Writer) func() {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()

	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "server started at %s", Address)
	io.WriteString(output, fmt.Sprintf("stats server available at %s%s\n", Address, url))

	return func() {
		mgr.Stop()
		logger.Log(logger.Allow, "statsview", "server stopped")
	}
}

// Available returns true if the stats server is available in this build.
func Available() bool {
	return true
}
