package models

import "github.com/google/uuid"

// NewDraft creates a fresh draft post for an author, seeded with the
// starter template: an intro text block, a question, and an empty answer.
func NewDraft(authorID string) *Post {
	p := &Post{
		AuthorID:    authorID,
		SocialLinks: map[string]string{},
	}
	intro := p.AppendBlock(BlockText)
	intro.Text = "Hi, I'm [name] and I decided to start this journey because..."
	question := p.AppendBlock(BlockQuestion)
	question.Text = "What was the biggest culture shock you faced?"
	p.AppendBlock(BlockText)
	return p
}

// AppendBlock appends a new block of the given kind with an empty body and a
// fresh unique id, and returns it. Kind is immutable afterwards.
func (p *Post) AppendBlock(kind BlockKind) *ContentBlock {
	block := ContentBlock{
		ID:   uuid.NewString(),
		Kind: kind,
	}
	if kind == BlockImage {
		block.Image = &ImageRef{Phase: ImagePending}
	}
	p.Content = append(p.Content, block)
	return &p.Content[len(p.Content)-1]
}

// RemoveBlock deletes the block with the given id, preserving the order of
// the rest. Removing an absent id is a no-op, not an error.
func (p *Post) RemoveBlock(id string) {
	for i, b := range p.Content {
		if b.ID == id {
			p.Content = append(p.Content[:i], p.Content[i+1:]...)
			return
		}
	}
}

// Block returns the block with the given id, or nil.
func (p *Post) Block(id string) *ContentBlock {
	for i := range p.Content {
		if p.Content[i].ID == id {
			return &p.Content[i]
		}
	}
	return nil
}

// SetBlockBody replaces the body of the block with the given id, leaving all
// other blocks and the overall order untouched. The body lands in the field
// the block's kind reads: prose for text and question, a pending local
// handle for image, the raw URL for video. Absent ids are a no-op.
func (p *Post) SetBlockBody(id, body string) {
	b := p.Block(id)
	if b == nil {
		return
	}
	switch b.Kind {
	case BlockText, BlockQuestion:
		b.Text = body
	case BlockImage:
		b.Image = &ImageRef{Phase: ImagePending, Handle: body}
	case BlockVideo:
		b.VideoURL = body
	}
}

// PendingImages returns the image blocks still holding a transient local
// handle, in document order.
func (p *Post) PendingImages() []*ContentBlock {
	var pending []*ContentBlock
	for i := range p.Content {
		b := &p.Content[i]
		if b.Kind == BlockImage && b.Image != nil && b.Image.Phase == ImagePending && b.Image.Handle != "" {
			pending = append(pending, b)
		}
	}
	return pending
}

// Persist replaces the image's transient handle with a permanent storage
// ref. The owning block keeps its id and position.
func (r *ImageRef) Persist(ref string) {
	r.Phase = ImagePersisted
	r.Handle = ref
}

// IsPending reports whether the image still holds a local handle.
func (r *ImageRef) IsPending() bool {
	return r.Phase == ImagePending
}
