/*
Package form exposes enumfield Fields to HTML forms.

[Options] renders a Field's choices for a select element.
[Parser] decodes submitted values into a struct
and validates enum-backed fields with tags registered per Field:

	p := form.NewParser()
	p.Register("size", sizeField)

	type garmentForm struct {
		Size string `schema:"size" validate:"required,size"`
	}

	var in garmentForm
	err := p.Parse(r.PostForm, &in)
*/
package form
