package controller

const choiceExit = "6"

const (
	msgMenu = `
=== Библиотека ===
1. Добавить книгу
2. Удалить книгу
3. Найти книгу
4. Показать все книги
5. Изменить статус книги
6. Выход`

	msgChoose     = "\nВыберите действие: "
	msgExit       = "До свидания!"
	msgInputError = "Некорректный ввод, выберите пункт от 1 до 6."

	msgPromptTitle  = "Введите название книги: "
	msgPromptAuthor = "Введите автора книги: "
	msgPromptYear   = "Введите год издания: "
	msgPromptID     = "Введите ID книги: "
	msgPromptStatus = "Введите новый статус (в наличии / выдана): "
	msgPromptSearch = "Введите название, автора или год: "

	msgAddSuccess    = "Книга успешно добавлена, ID: %d."
	msgDeleteSuccess = "Книга успешно удалена."
	msgStatusSuccess = "Статус книги успешно изменён."

	msgSearchNotFound = "Книги не найдены."
	msgNoBooks        = "В библиотеке нет книг."

	msgTitleEmpty   = "Название книги не может быть пустым."
	msgAuthorEmpty  = "Автор книги не может быть пустым."
	msgYearNotDigit = "Год должен быть числом."
	msgYearRange    = "Год должен быть в диапазоне от %d до %d."
	msgIDNotDigit   = "ID книги должен быть положительным числом."

	msgNotFound      = "Книга не найдена."
	msgStatusInvalid = "Некорректный статус, допустимо: «в наличии» или «выдана»."
	msgDuplicateID   = "Книга с таким ID уже существует."
	msgInternal      = "Не удалось выполнить операцию, подробности в журнале."
	msgInputEnded    = "Ввод завершён."
)
