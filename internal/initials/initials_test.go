package initials

import (
	"errors"
	"reflect"
	"testing"
)

func TestAssign(t *testing.T) {
	tests := []struct {
		name  string
		names []Name
		want  []string
	}{
		{
			name:  "no collision",
			names: []Name{{"John", "Smith"}, {"Alice", "Brown"}},
			want:  []string{"JS", "AB"},
		},
		{
			name:  "collision widens last name",
			names: []Name{{"John", "Smith"}, {"James", "Sutton"}},
			want:  []string{"JSm", "JSu"},
		},
		{
			name:  "only colliding authors widen",
			names: []Name{{"Alice", "Brown"}, {"John", "Smith"}, {"James", "Sutton"}},
			want:  []string{"AB", "JSm", "JSu"},
		},
		{
			name:  "compound first name with space",
			names: []Name{{"Mary Jane", "Watson"}},
			want:  []string{"MJW"},
		},
		{
			name:  "compound first name with hyphen",
			names: []Name{{"Jean-Pierre", "Dupont"}},
			want:  []string{"J-PD"},
		},
		{
			name:  "compound last name with hyphen",
			names: []Name{{"Maria", "Garcia-Lopez"}},
			want:  []string{"MG-L"},
		},
		{
			name:  "compound last names widen per part",
			names: []Name{{"Maria", "Garcia-Lopez"}, {"Marta", "Garcia-Lima"}},
			want:  []string{"MGa-Lo", "MGa-Li"},
		},
		{
			name:  "last name particles are stripped",
			names: []Name{{"Ana", "de Souza"}, {"Alba", "Da Silva"}},
			want:  []string{"ASo", "ASi"},
		},
		{
			// Only the first particle is removed; the rest of the name is
			// treated as a compound last name.
			name:  "single particle strip",
			names: []Name{{"Ana", "De Da Costa"}},
			want:  []string{"ADC"},
		},
		{
			name:  "accented names stay rune safe",
			names: []Name{{"Åsa", "Öberg"}},
			want:  []string{"ÅÖ"},
		},
		{
			name:  "empty input",
			names: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assign(tt.names)
			if err != nil {
				t.Fatalf("Assign() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Assign() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssignLabelsAreUnique(t *testing.T) {
	names := []Name{
		{"John", "Smith"},
		{"James", "Sutton"},
		{"Jane", "Sutter"},
		{"Alice", "Brown"},
		{"Ana", "de Souza"},
	}
	got, err := Assign(names)
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if len(got) != len(names) {
		t.Fatalf("Assign() returned %d labels for %d names", len(got), len(names))
	}
	seen := make(map[string]int)
	for i, label := range got {
		if label == "" {
			t.Errorf("label %d is empty", i)
		}
		if j, dup := seen[label]; dup {
			t.Errorf("labels %d and %d are both %q", j, i, label)
		}
		seen[label] = i
	}
}

func TestAssignTooManyIterations(t *testing.T) {
	// Same first initial and identical last names can never disambiguate.
	names := []Name{{"John", "Smith"}, {"Jane", "Smith"}}

	_, err := Assign(names)
	if err == nil {
		t.Fatal("Assign() expected an error, got nil")
	}
	var tooMany *TooManyIterationsError
	if !errors.As(err, &tooMany) {
		t.Fatalf("Assign() error = %T, want *TooManyIterationsError", err)
	}
	if want := []string{"JSmith"}; !reflect.DeepEqual(tooMany.Labels, want) {
		t.Errorf("Labels = %v, want %v", tooMany.Labels, want)
	}
	if want := "too many iterations to find unique initials for coauthors JSmith"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAssignWithCap(t *testing.T) {
	names := []Name{{"John", "Smith"}, {"James", "Sutton"}}

	// One round is not enough for this pair.
	if _, err := AssignWithCap(names, 1); err == nil {
		t.Error("AssignWithCap(1) expected an error, got nil")
	}

	got, err := AssignWithCap(names, 2)
	if err != nil {
		t.Fatalf("AssignWithCap(2) error = %v", err)
	}
	if want := []string{"JSm", "JSu"}; !reflect.DeepEqual(got, want) {
		t.Errorf("AssignWithCap(2) = %v, want %v", got, want)
	}
}
