package errorx

// context is the extra key/value detail attached to a CustomError
type context map[string]any

func Ctx() context {
	return make(context)
}

func (ctx context) Set(key string, value any) context {
	ctx[key] = value
	return ctx
}
