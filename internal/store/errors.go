package store

import "errors"

var (
	// ErrPersistence возвращается, когда снимок коллекции не удалось сохранить после всех попыток
	// Состояние в памяти при этом откатывается к снимку до мутации
	ErrPersistence = errors.New("store: persistence write failed")

	// ErrLoad возвращается при ошибке загрузки коллекций на старте
	ErrLoad = errors.New("store: failed to load collections")

	// ErrDecode возвращается, когда сохранённый снимок не удалось разобрать
	ErrDecode = errors.New("store: failed to decode collection")
)
