//Package dump reads and writes LAMMPS-style text dump trajectories,
//plainly or compressed with gzip or zstd, chosen by the file extension.
package dump

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	md "github.com/rmera/gomd"
	v3 "github.com/rmera/gomd/v3"
)

//This wrapper is only here because *zstd.Decoder has a Close method
//without a return value, so it misses io.ReadCloser by a hair.
type stdql struct {
	closeql func()
	*zstd.Decoder
}

func (s stdql) Close() error {
	s.closeql()
	return nil
}

func anyNewReader(name string, f io.Reader) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst") || strings.HasSuffix(name, ".zstd"):
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return &stdql{r.Close, r}, nil
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewReader(f)
	}
	return io.NopCloser(f), nil
}

func anyNewWriter(name string, f io.Writer) (io.WriteCloser, error) {
	switch {
	case strings.HasSuffix(name, ".zst") || strings.HasSuffix(name, ".zstd"):
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".gz"):
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	}
	return nopWriteCloser{f}, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//Read!

// DumpR reads LAMMPS dump frames from a file. It implements md.Traj.
type DumpR struct {
	f        *os.File
	unz      io.ReadCloser
	h        *bufio.Reader
	natoms   int
	filename string
	readable bool
}

// New opens a dump trajectory for reading and returns a pointer to the
// handle.
func New(name string) (*DumpR, error) {
	D := new(DumpR)
	D.natoms = -1 //just so we know if things don't work
	D.filename = name
	var err error
	D.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	D.unz, err = anyNewReader(name, bufio.NewReader(D.f))
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	D.h = bufio.NewReader(D.unz)
	D.readable = true
	return D, nil
}

// Readable returns true if the handle is readable (if it is possible to
// call Next on it).
func (D *DumpR) Readable() bool {
	return D.readable
}

// Len returns the number of atoms in the last frame read, or -1 if
// nothing has been read yet.
func (D *DumpR) Len() int {
	return D.natoms
}

// Close closes the handle. It can not be read after this call.
func (D *DumpR) Close() {
	if D == nil || !D.readable {
		return
	}
	D.unz.Close()
	D.f.Close()
	D.readable = false
}

//line returns the next line of the file without its newline. A last
//line without a newline still comes out with a nil error; io.EOF with
//an empty line marks the real end.
func (D *DumpR) line() (string, error) {
	str, err := D.h.ReadString('\n')
	str = strings.TrimRight(str, "\r\n")
	if err == io.EOF && str != "" {
		err = nil
	}
	return str, err
}

//item reads one line and checks that it is the given ITEM header,
//returning the part after the header name.
func (D *DumpR) item(name string) (string, error) {
	str, err := D.line()
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(str, "ITEM: "+name) {
		return "", fmt.Errorf("expected an 'ITEM: %s' line, got %q", name, str)
	}
	return strings.TrimSpace(strings.TrimPrefix(str, "ITEM: "+name)), nil
}

// Next reads the next frame of the trajectory and returns it. The frame
// gets its positions, types, cell, timestep and, if the dump carries vx
// vy vz columns, velocities; no type table is attached. Positions come
// from the x y z columns or, when those are absent, from scaled xs ys
// zs columns times the cell lengths. Atoms come out sorted by their
// dump id, so atom id n is row n-1. On a normal end of the trajectory
// the returned error implements md.LastFrameError.
func (D *DumpR) Next() (*md.Frame, error) {
	if !D.readable {
		return nil, Error{TrajUnIniRead, D.filename, []string{"Next"}, true}
	}
	str, err := D.line()
	if err != nil {
		if err == io.EOF {
			D.Close()
			return nil, newlastFrameError(D.filename, "Next")
		}
		return nil, Error{err.Error(), D.filename, []string{"Next"}, true}
	}
	if !strings.HasPrefix(str, "ITEM: TIMESTEP") {
		return nil, Error{fmt.Sprintf("expected an 'ITEM: TIMESTEP' line, got %q", str), D.filename, []string{"Next"}, true}
	}
	str, err = D.line()
	if err != nil {
		return nil, Error{"can't read the timestep: " + err.Error(), D.filename, []string{"Next"}, true}
	}
	step, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil {
		return nil, Error{"can't parse the timestep: " + err.Error(), D.filename, []string{"Next"}, true}
	}
	str, err = D.item("NUMBER OF ATOMS")
	if err != nil {
		return nil, Error{err.Error(), D.filename, []string{"Next"}, true}
	}
	str, err = D.line()
	if err != nil {
		return nil, Error{"can't read the atom number: " + err.Error(), D.filename, []string{"Next"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || natoms < 0 {
		return nil, Error{fmt.Sprintf("can't parse the atom number from %q", str), D.filename, []string{"Next"}, true}
	}
	bounds, err := D.item("BOX BOUNDS")
	if err != nil {
		return nil, Error{err.Error(), D.filename, []string{"Next"}, true}
	}
	if strings.Contains(bounds, "xy") {
		return nil, Error{"triclinic cells are not supported", D.filename, []string{"Next"}, true}
	}
	var cell [3]float64
	for a := 0; a < 3; a++ {
		str, err = D.line()
		if err != nil {
			return nil, Error{"can't read the box bounds: " + err.Error(), D.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(str)
		if len(fields) != 2 {
			return nil, Error{fmt.Sprintf("malformed box bounds line %q", str), D.filename, []string{"Next"}, true}
		}
		lo, err1 := strconv.ParseFloat(fields[0], 64)
		hi, err2 := strconv.ParseFloat(fields[1], 64)
		if err1 != nil || err2 != nil {
			return nil, Error{fmt.Sprintf("can't parse the box bounds line %q", str), D.filename, []string{"Next"}, true}
		}
		cell[a] = hi - lo
	}
	cols, err := D.item("ATOMS")
	if err != nil {
		return nil, Error{err.Error(), D.filename, []string{"Next"}, true}
	}
	ci := make(map[string]int)
	for i, v := range strings.Fields(cols) {
		ci[v] = i
	}
	poscols := []string{"x", "y", "z"}
	scaled := false
	if _, ok := ci["x"]; !ok {
		if _, ok := ci["xs"]; ok {
			poscols = []string{"xs", "ys", "zs"}
			scaled = true
		}
	}
	for _, needed := range append([]string{"id", "type"}, poscols...) {
		if _, ok := ci[needed]; !ok {
			return nil, Error{fmt.Sprintf("the dump has no %q column", needed), D.filename, []string{"Next"}, true}
		}
	}
	_, hasvx := ci["vx"]
	_, hasvy := ci["vy"]
	_, hasvz := ci["vz"]
	hasvel := hasvx && hasvy && hasvz
	if (hasvx || hasvy || hasvz) && !hasvel {
		return nil, Error{"the dump has only some of the vx vy vz columns", D.filename, []string{"Next"}, true}
	}
	pos := make([]float64, 3*natoms)
	var vel []float64
	if hasvel {
		vel = make([]float64, 3*natoms)
	}
	types := make([]int, natoms)
	seen := make([]bool, natoms)
	for i := 0; i < natoms; i++ {
		str, err = D.line()
		if err != nil {
			return nil, Error{"can't read an atom line: " + err.Error(), D.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(str)
		if len(fields) < len(ci) {
			return nil, Error{fmt.Sprintf("atom line %q has %d fields, the header names %d columns", str, len(fields), len(ci)), D.filename, []string{"Next"}, true}
		}
		id, err := strconv.Atoi(fields[ci["id"]])
		if err != nil || id < 1 || id > natoms {
			return nil, Error{fmt.Sprintf("bad atom id in line %q", str), D.filename, []string{"Next"}, true}
		}
		if seen[id-1] {
			return nil, Error{fmt.Sprintf("duplicated atom id %d", id), D.filename, []string{"Next"}, true}
		}
		seen[id-1] = true
		t, err := strconv.Atoi(fields[ci["type"]])
		if err != nil {
			return nil, Error{fmt.Sprintf("bad atom type in line %q", str), D.filename, []string{"Next"}, true}
		}
		types[id-1] = t
		for a, col := range poscols {
			v, err := strconv.ParseFloat(fields[ci[col]], 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("bad %s coordinate in line %q", col, str), D.filename, []string{"Next"}, true}
			}
			if scaled {
				v *= cell[a]
			}
			pos[3*(id-1)+a] = v
		}
		if hasvel {
			for a, col := range []string{"vx", "vy", "vz"} {
				v, err := strconv.ParseFloat(fields[ci[col]], 64)
				if err != nil {
					return nil, Error{fmt.Sprintf("bad %s velocity in line %q", col, str), D.filename, []string{"Next"}, true}
				}
				vel[3*(id-1)+a] = v
			}
		}
	}
	var posm *v3.Matrix
	if natoms > 0 {
		posm, err = v3.NewMatrix(pos)
		if err != nil {
			return nil, errDecorate(err, "Next")
		}
	}
	F, err := md.NewFrame(posm, types, cell)
	if err != nil {
		return nil, errDecorate(err, "Next")
	}
	F.Step = step
	if hasvel && natoms > 0 {
		F.Vel, err = v3.NewMatrix(vel)
		if err != nil {
			return nil, errDecorate(err, "Next")
		}
	}
	D.natoms = natoms
	return F, nil
}

//Write!

// DumpW writes frames to a LAMMPS dump file.
type DumpW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
}

// NewWriter opens a dump file for writing. The compression, if any, is
// chosen from the file extension, like when reading.
func NewWriter(name string) (*DumpW, error) {
	W := new(DumpW)
	W.filename = name
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.h, err = anyNewWriter(name, W.f)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"NewWriter"}, true}
	}
	W.writeable = true
	return W, nil
}

// Close flushes and closes the handle. It can not be written after this
// call.
func (W *DumpW) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.h.Close()
	W.f.Close()
	W.writeable = false
}

// WNext writes the given frame as the next frame of the dump, with id,
// type and position columns, plus velocity columns if the frame has
// velocities.
func (W *DumpW) WNext(F *md.Frame) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if F == nil {
		return Error{NilFrame, W.filename, []string{"WNext"}, true}
	}
	hasvel := F.Vel != nil
	if hasvel && F.Vel.NVecs() != F.Len() {
		return Error{fmt.Sprintf("the frame has %d velocities for %d atoms", F.Vel.NVecs(), F.Len()), W.filename, []string{"WNext"}, true}
	}
	fmt.Fprintf(W.h, "ITEM: TIMESTEP\n%d\n", F.Step)
	fmt.Fprintf(W.h, "ITEM: NUMBER OF ATOMS\n%d\n", F.Len())
	fmt.Fprintf(W.h, "ITEM: BOX BOUNDS pp pp pp\n")
	for a := 0; a < 3; a++ {
		fmt.Fprintf(W.h, "%.8g %.8g\n", 0.0, F.Cell[a])
	}
	if hasvel {
		fmt.Fprintf(W.h, "ITEM: ATOMS id type x y z vx vy vz\n")
	} else {
		fmt.Fprintf(W.h, "ITEM: ATOMS id type x y z\n")
	}
	for i := 0; i < F.Len(); i++ {
		fmt.Fprintf(W.h, "%d %d %.8g %.8g %.8g", i+1, F.Types[i], F.Pos.At(i, 0), F.Pos.At(i, 1), F.Pos.At(i, 2))
		if hasvel {
			fmt.Fprintf(W.h, " %.8g %.8g %.8g", F.Vel.At(i, 0), F.Vel.At(i, 1), F.Vel.At(i, 2))
		}
		fmt.Fprintf(W.h, "\n")
	}
	return nil
}
