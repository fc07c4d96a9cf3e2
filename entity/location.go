package entity

import (
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"
)

// Location carries the comments attached to a declaration within its
// parent file. A zero comment set is represented by an empty Location,
// never by the absence of one.
type Location struct {
	// SourceFile is the proto file name the location belongs to.
	SourceFile string
	// Path is the source code info path of the declaration.
	Path []int32
	// LeadingDetachedComments are comment blocks separated from the
	// declaration by a blank line.
	LeadingDetachedComments []string
	// LeadingComments is the comment directly preceding the declaration.
	LeadingComments string
	// TrailingComments is the comment following the declaration.
	TrailingComments string
}

// locationIndex indexes a file's source code info by path for constant
// time lookup. Matching is exact path equality, never prefix matching.
type locationIndex struct {
	sourceFile string
	locs       map[string]*descriptorpb.SourceCodeInfo_Location
}

func newLocationIndex(proto *descriptorpb.FileDescriptorProto) *locationIndex {
	idx := &locationIndex{
		sourceFile: proto.GetName(),
		locs:       map[string]*descriptorpb.SourceCodeInfo_Location{},
	}
	for _, loc := range proto.GetSourceCodeInfo().GetLocation() {
		idx.locs[pathKey(loc.GetPath())] = loc
	}
	return idx
}

// resolve returns the comments recorded for path, or an empty Location
// if the file has no location entry with exactly that path.
func (idx *locationIndex) resolve(path []int32) Location {
	location := Location{
		SourceFile: idx.sourceFile,
		Path:       path,
	}
	loc, ok := idx.locs[pathKey(path)]
	if !ok {
		return location
	}
	detached := make([]string, len(loc.GetLeadingDetachedComments()))
	for i, c := range loc.GetLeadingDetachedComments() {
		detached[i] = cleanComment(c)
	}
	location.LeadingDetachedComments = detached
	location.LeadingComments = cleanComment(loc.GetLeadingComments())
	location.TrailingComments = cleanComment(loc.GetTrailingComments())
	return location
}

func pathKey(path []int32) string {
	var b strings.Builder
	for i, p := range path {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(p), 10))
	}
	return b.String()
}

// cleanComment strips the single leading space protoc puts in front of
// every comment line. No other whitespace is touched.
func cleanComment(comment string) string {
	lines := strings.Split(comment, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, " ") {
			lines[i] = line[1:]
		}
	}
	return strings.Join(lines, "\n")
}
