package entity

import "sort"

// Registry is the lookup table from fully qualified names to declarations.
// One Registry belongs to exactly one run; it is created empty and passed
// explicitly to every Register and Resolve call.
//
// Registration does not police uniqueness: the last registration under a
// name wins. Well-formed compilation units never collide, protoc rejects
// duplicate symbols before a plugin ever sees them.
type Registry struct {
	files    map[string]*File
	messages map[string]*Message
	enums    map[string]*Enum
	services map[string]*Service
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		files:    map[string]*File{},
		messages: map[string]*Message{},
		enums:    map[string]*Enum{},
		services: map[string]*Service{},
	}
}

func (r *Registry) registerFile(f *File)       { r.files[f.Name()] = f }
func (r *Registry) registerMessage(m *Message) { r.messages[m.FullName] = m }
func (r *Registry) registerEnum(e *Enum)       { r.enums[e.FullName] = e }
func (r *Registry) registerService(s *Service) { r.services[s.FullName] = s }

// FileByName returns the file registered under the logical file name.
func (r *Registry) FileByName(name string) (*File, bool) {
	f, ok := r.files[name]
	return f, ok
}

// MessageByName returns the message registered under the fully qualified name.
func (r *Registry) MessageByName(name string) (*Message, bool) {
	m, ok := r.messages[name]
	return m, ok
}

// EnumByName returns the enum registered under the fully qualified name.
func (r *Registry) EnumByName(name string) (*Enum, bool) {
	e, ok := r.enums[name]
	return e, ok
}

// ServiceByName returns the service registered under the fully qualified name.
func (r *Registry) ServiceByName(name string) (*Service, bool) {
	s, ok := r.services[name]
	return s, ok
}

// AllFiles returns all registered files, ordered by file name.
func (r *Registry) AllFiles() []*File {
	files := make([]*File, 0, len(r.files))
	for _, f := range r.files {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files
}

// AllMessages returns all registered messages, ordered by full name.
func (r *Registry) AllMessages() []*Message {
	messages := make([]*Message, 0, len(r.messages))
	for _, m := range r.messages {
		messages = append(messages, m)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].FullName < messages[j].FullName })
	return messages
}

// AllEnums returns all registered enums, ordered by full name.
func (r *Registry) AllEnums() []*Enum {
	enums := make([]*Enum, 0, len(r.enums))
	for _, e := range r.enums {
		enums = append(enums, e)
	}
	sort.Slice(enums, func(i, j int) bool { return enums[i].FullName < enums[j].FullName })
	return enums
}

// AllServices returns all registered services, ordered by full name.
func (r *Registry) AllServices() []*Service {
	services := make([]*Service, 0, len(r.services))
	for _, s := range r.services {
		services = append(services, s)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].FullName < services[j].FullName })
	return services
}

// FilesByPackage returns all files that declare the proto package pkg.
func (r *Registry) FilesByPackage(pkg string) []*File {
	var files []*File
	for _, f := range r.AllFiles() {
		if f.PackageName == pkg {
			files = append(files, f)
		}
	}
	return files
}

// MessagesByPackage returns all messages declared in pkg. If topLevelOnly
// is true, messages nested in other messages are excluded.
func (r *Registry) MessagesByPackage(pkg string, topLevelOnly bool) []*Message {
	var messages []*Message
	for _, m := range r.AllMessages() {
		if topLevelOnly && m.Parent != nil {
			continue
		}
		if m.ParentFile.PackageName == pkg {
			messages = append(messages, m)
		}
	}
	return messages
}

// EnumsByPackage returns all enums declared in pkg. If topLevelOnly is
// true, enums nested in messages are excluded.
func (r *Registry) EnumsByPackage(pkg string, topLevelOnly bool) []*Enum {
	var enums []*Enum
	for _, e := range r.AllEnums() {
		if topLevelOnly && e.Parent != nil {
			continue
		}
		if e.ParentFile.PackageName == pkg {
			enums = append(enums, e)
		}
	}
	return enums
}

// ServicesByPackage returns all services declared in pkg.
func (r *Registry) ServicesByPackage(pkg string) []*Service {
	var services []*Service
	for _, s := range r.AllServices() {
		if s.ParentFile.PackageName == pkg {
			services = append(services, s)
		}
	}
	return services
}

// resolveMessage looks up an absolute message reference. file is the proto
// file and ref the full name of the referencing declaration, used for
// error reporting only.
func resolveMessage(r *Registry, file, ref, typeName string) (*Message, error) {
	name, ok := absoluteName(typeName)
	if !ok {
		return nil, &UnsupportedReferenceError{TypeName: typeName}
	}
	m, ok := r.MessageByName(name)
	if !ok {
		return nil, &ResolutionError{File: file, Ref: ref, TypeName: typeName}
	}
	return m, nil
}

// resolveEnum is the enum counterpart of resolveMessage.
func resolveEnum(r *Registry, file, ref, typeName string) (*Enum, error) {
	name, ok := absoluteName(typeName)
	if !ok {
		return nil, &UnsupportedReferenceError{TypeName: typeName}
	}
	e, ok := r.EnumByName(name)
	if !ok {
		return nil, &ResolutionError{File: file, Ref: ref, TypeName: typeName}
	}
	return e, nil
}

// absoluteName strips the leading dot of a fully qualified reference.
// It reports false for relative references.
func absoluteName(typeName string) (string, bool) {
	if len(typeName) == 0 || typeName[0] != '.' {
		return "", false
	}
	return typeName[1:], true
}
